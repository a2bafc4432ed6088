package search

// Efficiency ratings reported by Summary.
const (
	RatingExcellent = "excellent"
	RatingGood      = "good"
	RatingFair      = "fair"
	RatingLow       = "low"
)

// Summary is the serializable digest of a Result used for comparison tables.
// Coordinate sequences are omitted.
type Summary struct {
	Success         bool    `json:"success"`
	Algorithm       string  `json:"algorithm"`
	Cost            float64 `json:"cost"`
	ElapsedMicros   int64   `json:"elapsedMicros"`
	Expanded        int     `json:"expanded"`
	PathLength      int     `json:"pathLength"`
	Generated       int     `json:"generated"`
	BranchingFactor float64 `json:"branchingFactor"`
	Efficiency      float64 `json:"efficiency"`
	Rating          string  `json:"rating"`
}

// Summary digests r.
//
//   - Generated:       visited + frontier trace lengths.
//   - BranchingFactor: expansions per path cell, 0 without a path.
//   - Efficiency:      path cells per visited cell as a percentage.
func (r Result) Summary() Summary {
	s := Summary{
		Success:       r.Success,
		Algorithm:     r.Algorithm,
		Cost:          r.Cost,
		ElapsedMicros: r.Elapsed.Microseconds(),
		Expanded:      r.Expanded,
		PathLength:    len(r.Path),
		Generated:     len(r.Visited) + len(r.Frontier),
	}
	if s.PathLength > 0 {
		s.BranchingFactor = float64(r.Expanded) / float64(s.PathLength)
	}
	if len(r.Visited) > 0 {
		s.Efficiency = float64(s.PathLength) / float64(len(r.Visited)) * 100
	}
	s.Rating = rate(s.Efficiency)

	return s
}

func rate(efficiency float64) string {
	switch {
	case efficiency > 50:
		return RatingExcellent
	case efficiency > 25:
		return RatingGood
	case efficiency > 10:
		return RatingFair
	default:
		return RatingLow
	}
}
