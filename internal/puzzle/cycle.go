package puzzle

// FindCycle detects the cycle in the sequence x0, next(x0), next(next(x0)), ...
// using Floyd's tortoise and hare. It returns mu, the index of the first element
// of the cycle, and lambda, the cycle length.
func FindCycle[T any](x0 T, next func(T) T, equal func(a, b T) bool) (mu, lambda int) {
	tortoise := next(x0)
	hare := next(next(x0))
	for !equal(tortoise, hare) {
		tortoise = next(tortoise)
		hare = next(next(hare))
	}

	tortoise = x0
	for !equal(tortoise, hare) {
		tortoise = next(tortoise)
		hare = next(hare)
		mu++
	}

	lambda = 1
	hare = next(tortoise)
	for !equal(tortoise, hare) {
		hare = next(hare)
		lambda++
	}
	return mu, lambda
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of all values, 0 for none.
func LCM(values ...int64) int64 {
	if len(values) == 0 {
		return 0
	}
	out := values[0]
	for _, v := range values[1:] {
		out = out / GCD(out, v) * v
	}
	return out
}
