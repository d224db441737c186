package common

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ParallelFor runs fn(i) over i in [0, n) using up to GOMAXPROCS workers. It fans
// out per-frame rasterising in render.EncodeGIF and the edge entries of the lava
// beam search. Worker w takes i = w, w+workers, ... so neighbouring indices, which
// tend to cost the same, land on different workers.
func ParallelFor(n int, fn func(i int)) {
	_ = ParallelForStop(n, func(i int) bool {
		fn(i)
		return false
	})
}

// ParallelForStop is ParallelFor with early exit: once any fn returns true no
// worker picks up further indices, and the result reports whether that happened.
func ParallelForStop(n int, fn func(i int) bool) bool {
	if n <= 0 {
		return false
	}
	workers := min(runtime.GOMAXPROCS(0), n)

	var stop atomic.Bool
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := w; i < n && !stop.Load(); i += workers {
				if fn(i) {
					stop.Store(true)
					return
				}
			}
		}()
	}

	wg.Wait()
	return stop.Load()
}
