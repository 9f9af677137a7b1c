package domain

// Activity is an extracurricular offering with a bounded participant list.
// Participants are email strings kept in signup order; comparisons are
// byte-exact (no case folding).
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether email is already signed up.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Full reports whether the activity is at capacity.
func (a Activity) Full() bool {
	return len(a.Participants) >= a.MaxParticipants
}
