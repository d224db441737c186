package solutions

import (
	"math"
	"strconv"
	"strings"

	"github.com/jo-hoe/goadvent/internal/puzzle"
)

// BoatRaceSolver counts the button-hold times that beat each race record.
type BoatRaceSolver struct{}

func init() { mustRegister(BoatRaceSolver{}) }

func (BoatRaceSolver) Day() int      { return 6 }
func (BoatRaceSolver) Title() string { return "Wait For It" }

type boatRace struct {
	time, distance int64
}

// winningCharges returns how many hold times h in (0, time) give h*(time-h) > distance.
func (r boatRace) winningCharges() int64 {
	// roots of h^2 - time*h + distance = 0
	t := float64(r.time)
	disc := t*t - 4*float64(r.distance)
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	lo := int64(math.Floor((t-sq)/2)) - 1
	hi := int64(math.Ceil((t+sq)/2)) + 1
	// float rounding can be off by one near the roots, so settle exactly
	for lo < r.time && !r.beats(lo) {
		lo++
	}
	for hi > 0 && !r.beats(hi) {
		hi--
	}
	// lo stops at time when no hold wins, which for time 0 also meets hi
	if hi < lo || !r.beats(lo) {
		return 0
	}
	return hi - lo + 1
}

func (r boatRace) beats(hold int64) bool {
	return hold > 0 && hold < r.time && hold*(r.time-hold) > r.distance
}

func (BoatRaceSolver) Solve(part puzzle.Part, input string) (int64, error) {
	if !part.Valid() {
		return 0, unknownPart(part)
	}
	races, err := parseBoatRaces(input, part)
	if err != nil {
		return 0, err
	}
	margin := int64(1)
	for _, race := range races {
		margin *= race.winningCharges()
	}
	return margin, nil
}

func parseBoatRaces(input string, part puzzle.Part) ([]boatRace, error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return nil, puzzle.InvalidInput("expected Time and Distance lines")
	}
	timeText, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, puzzle.InvalidInput("expected 'Time:' line")
	}
	distanceText, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, puzzle.InvalidInput("expected 'Distance:' line")
	}
	if part == puzzle.PartTwo {
		// bad kerning: the numbers on each line are really a single number
		timeText = strings.Join(strings.Fields(timeText), "")
		distanceText = strings.Join(strings.Fields(distanceText), "")
		if _, err := strconv.ParseInt(timeText, 10, 64); err != nil {
			return nil, puzzle.InvalidInput("invalid race time %q", timeText)
		}
	}
	times, err := puzzle.Ints(timeText)
	if err != nil {
		return nil, err
	}
	distances, err := puzzle.Ints(distanceText)
	if err != nil {
		return nil, err
	}
	if len(times) == 0 || len(times) != len(distances) {
		return nil, puzzle.InvalidInput("got %d times and %d distances", len(times), len(distances))
	}
	races := make([]boatRace, len(times))
	for i := range times {
		races[i] = boatRace{time: times[i], distance: distances[i]}
	}
	return races, nil
}
