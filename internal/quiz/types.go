package quiz

// UserLevel is the learner's proficiency tier. It controls sentence
// complexity in both generated and fallback questions.
type UserLevel string

const (
	LevelA2 UserLevel = "A2"
	LevelB1 UserLevel = "B1"
)

// Levels lists all selectable levels in display order.
func Levels() []UserLevel {
	return []UserLevel{LevelA2, LevelB1}
}

// GameState is the lifecycle state of a quiz session.
// The only reachable states are the four below; there is no error state.
// Load failures return the session to StateIdle with an inline message
// (see Session.Err).
type GameState int

const (
	StateIdle GameState = iota
	StateLoading
	StatePlaying
	StateFinished
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Question is a single fill-in-the-blank item. The sentence is rendered
// as PreGap, a blank, then PostGap; Answer is the sole accepted response.
// Questions are immutable once produced.
type Question struct {
	// ID is unique within one session's question list.
	ID int

	// PreGap is the sentence text before the blank.
	PreGap string

	// PostGap is the sentence text after the blank, including punctuation.
	PostGap string

	// Answer is the canonical correct fill for the blank.
	Answer string

	// Translation is the sentence translated for context. Display only.
	Translation string

	// Hint names the grammatical cue, e.g. "er (Dativ)". Optional.
	Hint string
}

// Sentence renders the question with the blank marked, for logs and review.
func (q Question) Sentence() string {
	s := q.PreGap + " ___ " + q.PostGap
	if q.PreGap == "" {
		s = "___ " + q.PostGap
	}
	return s
}

// AnswerRecord captures one answered question. Records are appended to the
// session history exactly once per answer and never mutated afterward.
type AnswerRecord struct {
	QuestionID int
	Question   Question

	// UserInput is the learner's answer exactly as typed.
	UserInput string

	IsCorrect bool
}
