package benchmark

import "time"

// Summary holds the min/avg/max of a set of trial times.
type Summary struct {
	Min time.Duration
	Avg time.Duration
	Max time.Duration
}

// Summarize reduces trial times to a Summary. The caller decides which
// trials participate; warm-up exclusion happens before this point.
func Summarize(times []time.Duration) Summary {
	if len(times) == 0 {
		return Summary{}
	}

	s := Summary{Min: times[0], Max: times[0]}
	var total time.Duration
	for _, t := range times {
		total += t
		if t < s.Min {
			s.Min = t
		}
		if t > s.Max {
			s.Max = t
		}
	}
	s.Avg = total / time.Duration(len(times))
	return s
}
