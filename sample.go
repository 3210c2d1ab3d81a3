package bezier

import "fmt"

// Parameters returns n+1 evenly spaced parameter values i/n for i = 0..n.
// The last value is exactly 1.
func Parameters[F Float](n int) ([]F, error) {
	if n < minSampleIntervals {
		return nil, fmt.Errorf("%w: sample intervals must be at least %d", ErrInvalidConfig, minSampleIntervals)
	}

	params := make([]F, n+1)
	for i := range params {
		params[i] = F(i) / F(n)
	}
	return params, nil
}

// Sample evaluates c at n+1 evenly spaced parameters from 0 to 1.
func Sample[F Float](c Curve[F], n int) ([]Point[F], error) {
	params, err := Parameters[F](n)
	if err != nil {
		return nil, err
	}

	out := make([]Point[F], len(params))
	for i, u := range params {
		out[i] = c.At(u)
	}
	return out, nil
}

// SampleSurface evaluates s on an (nu+1)×(nv+1) parameter grid.
// out[i][j] is the point at (i/nu, j/nv).
func SampleSurface[F Float](s Surface[F], nu, nv int) ([][]Point[F], error) {
	us, err := Parameters[F](nu)
	if err != nil {
		return nil, err
	}
	vs, err := Parameters[F](nv)
	if err != nil {
		return nil, err
	}

	out := make([][]Point[F], len(us))
	for i, u := range us {
		row := make([]Point[F], len(vs))
		for j, v := range vs {
			row[j] = s.At(u, v)
		}
		out[i] = row
	}
	return out, nil
}
