package review

const (
	NoteAverage  = "Average score across all reviews"
	NoteNoScores = "No scores recorded"
)

// Average returns the mean rating over scores and a note saying whether
// there was anything to average.
//
// A score without a rating adds 0 to the sum but still counts toward the
// divisor, so {4, missing} averages to 2.
func Average(scores []Score) (*float64, string) {
	if len(scores) == 0 {
		return nil, NoteNoScores
	}

	sum := 0
	for _, s := range scores {
		if s.Rating != nil {
			sum += *s.Rating
		}
	}

	avg := float64(sum) / float64(len(scores))
	return &avg, NoteAverage
}
