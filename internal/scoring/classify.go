package scoring

// LevelForScore maps a continuous maturity score onto a discrete level 0-5.
// Total over the whole real line: out-of-range inputs clamp to the edge
// levels. The boundaries come from the national maturity model and are
// intentionally non-uniform (the level 3 "Activated" band is the widest);
// treat them as a fixed lookup, not a curve.
func LevelForScore(score float64) int {
	switch {
	case score < 0.25:
		return 0
	case score < 1.25:
		return 1
	case score < 2.5:
		return 2
	case score < 4.0:
		return 3
	case score < 4.75:
		return 4
	default:
		return 5
	}
}
