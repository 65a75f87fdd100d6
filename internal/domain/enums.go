package domain

// CardState represents the spaced-repetition learning state of a card.
type CardState string

const (
	CardStateNew      CardState = "NEW"
	CardStateLearning CardState = "LEARNING"
	CardStateReview   CardState = "REVIEW"
)

func (s CardState) String() string { return string(s) }

func (s CardState) IsValid() bool {
	switch s {
	case CardStateNew, CardStateLearning, CardStateReview:
		return true
	}
	return false
}

// ReviewGrade represents the user's self-assessed recall quality.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// IsCorrect reports whether the grade counts as a correct answer in session
// statistics. HARD is correct-but-slow.
func (g ReviewGrade) IsCorrect() bool {
	return g == ReviewGradeHard || g == ReviewGradeGood || g == ReviewGradeEasy
}

// SessionStatus represents the state of a review session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusAbandoned SessionStatus = "ABANDONED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusCompleted, SessionStatusAbandoned:
		return true
	}
	return false
}

// IsFinal reports whether the session has been finalized.
func (s SessionStatus) IsFinal() bool {
	return s == SessionStatusCompleted || s == SessionStatusAbandoned
}

// ChatRole identifies the author of a turn in an advisor conversation.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

func (r ChatRole) String() string { return string(r) }

func (r ChatRole) IsValid() bool {
	switch r {
	case ChatRoleUser, ChatRoleAssistant:
		return true
	}
	return false
}
