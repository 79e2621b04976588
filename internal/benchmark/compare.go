package benchmark

import "fmt"

// Comparison relates a run to an earlier one of the same kind. Higher
// headline figures are better for both probes, so a negative delta is a
// slowdown.
type Comparison struct {
	Kind     Kind
	Prev     Run
	Curr     Run
	DeltaPct float64
}

// Compare computes the percentage change of the headline metric.
func Compare(prev, curr Run) Comparison {
	comp := Comparison{Kind: curr.Kind, Prev: prev, Curr: curr}
	if prev.Headline > 0 {
		comp.DeltaPct = (curr.Headline - prev.Headline) / prev.Headline * 100
	}
	return comp
}

// Regression reports whether throughput dropped by more than the given
// threshold percentage.
func (c Comparison) Regression(threshold float64) bool {
	return c.DeltaPct < -threshold
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %.2f -> %.2f (%+.2f%%)", c.Kind, c.Prev.Headline, c.Curr.Headline, c.DeltaPct)
}
