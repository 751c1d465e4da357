package wilsoncowan

// Stats summarises the population activity of a history.
type Stats struct {
	Steps        int
	MeanActivity float64
	PeakActive   int
	PeakStep     int
	SilentSteps  int
	// BranchingRatio is the mean of A(t+1)/A(t) over steps with A(t) > 0.
	// Values near 1 indicate critical avalanche dynamics.
	BranchingRatio float64
}

// Summarize computes Stats over the committed frames of h.
func Summarize(h *History) Stats {
	st := Stats{Steps: h.Len()}
	if st.Steps == 0 {
		return st
	}
	counts := make([]int, st.Steps)
	sum := 0
	for t := range counts {
		counts[t] = h.ActiveCount(t)
		sum += counts[t]
		if counts[t] > st.PeakActive {
			st.PeakActive = counts[t]
			st.PeakStep = t
		}
		if counts[t] == 0 {
			st.SilentSteps++
		}
	}
	st.MeanActivity = float64(sum) / float64(st.Steps*h.Rows()*h.Cols())

	ratio, n := 0.0, 0
	for t := 0; t+1 < len(counts); t++ {
		if counts[t] == 0 {
			continue
		}
		ratio += float64(counts[t+1]) / float64(counts[t])
		n++
	}
	if n > 0 {
		st.BranchingRatio = ratio / float64(n)
	}
	return st
}
