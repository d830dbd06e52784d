package assessment

import "time"

// CanRetake reports whether testID may be taken again: never taken, or the
// last submission is more than one calendar month old.
func CanRetake(submissions []Submission, testID string, now time.Time) bool {
	last := latestFor(submissions, testID)
	if last == nil {
		return true
	}
	return last.SubmissionDate.Before(now.AddDate(0, -1, 0))
}

func latestFor(submissions []Submission, testID string) *Submission {
	var last *Submission
	for i := range submissions {
		s := &submissions[i]
		if s.TestID != testID {
			continue
		}
		if last == nil || s.SubmissionDate.After(last.SubmissionDate) {
			last = s
		}
	}
	return last
}
