package solutions

// maxAnimationFrames bounds the frames an animator emits so long simulations
// stay cheap to rasterise.
const maxAnimationFrames = 80

// frameStride returns how many simulation steps make up one frame.
func frameStride(steps int) int {
	if steps <= maxAnimationFrames {
		return 1
	}
	return (steps + maxAnimationFrames - 1) / maxAnimationFrames
}

// gridCell picks a cell size so that a grid renders at roughly 640 pixels.
func gridCell(cols, rows int) int {
	return min(24, max(2, 640/max(cols, rows, 1)))
}
