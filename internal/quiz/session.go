package quiz

import "context"

// Scoring: a correct answer awards PointsCorrect, a wrong one deducts
// PointsWrong. The score accumulates within a session and may go negative.
const (
	PointsCorrect = 10
	PointsWrong   = 5
)

// DefaultTopicID is applied when no topic has been chosen yet. It must
// name a registered topic strategy.
const DefaultTopicID = "possessivpronomen"

// loadErrMessage is shown inline on the start screen when loading fails.
// Loading can only fail defensively: sources are expected to fall back to
// offline content rather than error.
const loadErrMessage = "Something went wrong while loading questions. Please try again."

// Source produces the ordered question list for a session.
//
// Implementations are expected to be total: on any provider-side failure
// they fall back to offline content and return a non-empty list with a nil
// error. The session still defends against a violated contract by
// returning to StateIdle with an inline error message.
type Source interface {
	Fetch(ctx context.Context, level UserLevel, topicID string) ([]Question, error)
}

// Session is the aggregate root of one quiz play-through. It is a plain
// mutable value owned by its caller (the presentation layer or a test);
// there is no process-wide instance. All mutation goes through the six
// operations below, which are synchronous and not safe for concurrent
// use; while a load is in flight, State == StateLoading signals the
// caller to hold further operations. The only work that may run on
// another goroutine is a LoadTicket's Fetch, which reads no session
// state.
type Session struct {
	// Questions is the ordered question list for the current game.
	// Empty while idle.
	Questions []Question

	// CurrentQuestionIndex points at the active question. Meaningful only
	// while playing; always within [0, len(Questions)].
	CurrentQuestionIndex int

	// Score is the accumulated session score. Unbounded below zero.
	Score int

	// History holds one record per answered question, in answer order.
	History []AnswerRecord

	// UserLevel and SelectedTopic persist across restarts; they are only
	// reset by explicit SetLevel/SetTopic calls.
	UserLevel     UserLevel
	SelectedTopic string

	// State is the lifecycle state driving the UI.
	State GameState

	// Err is a user-facing message set when a load failed. Non-empty only
	// while idle; cleared on the next StartGame.
	Err string

	source Source

	// generation guards against a stale load completing after the session
	// was restarted or superseded by a newer StartGame.
	generation int
}

// NewSession creates an idle session reading questions from source,
// with the default level and topic.
func NewSession(source Source) *Session {
	return &Session{
		UserLevel:     LevelA2,
		SelectedTopic: DefaultTopicID,
		State:         StateIdle,
		source:        source,
	}
}

// SetLevel updates the learner's level. Legal in any state; a level change
// while playing affects the next StartGame only, never questions already
// generated.
func (s *Session) SetLevel(level UserLevel) {
	s.UserLevel = level
}

// SetTopic updates the selected topic. Legal in any state. The id must
// resolve in the topic registry; the session trusts this precondition and
// the registry fails loudly if it is violated at fetch time.
func (s *Session) SetTopic(topicID string) {
	s.SelectedTopic = topicID
}

// LoadTicket is a snapshot taken by BeginLoad: the level and topic to
// fetch for, plus the generation token that lets CompleteLoad discard
// results a restart or newer load has superseded. A ticket carries
// everything Fetch needs, so the fetching goroutine never reads the
// session.
type LoadTicket struct {
	Level UserLevel
	Topic string

	gen    int
	source Source
}

// Fetch runs the source fetch for the snapshotted level and topic. Safe
// to call from any goroutine.
func (t LoadTicket) Fetch(ctx context.Context) ([]Question, error) {
	return t.source.Fetch(ctx, t.Level, t.Topic)
}

// BeginLoad transitions the session to loading and returns a ticket for
// the fetch. The caller runs Fetch wherever it likes and hands the
// result to CompleteLoad from the goroutine that owns the session.
func (s *Session) BeginLoad() LoadTicket {
	s.generation++
	s.State = StateLoading
	s.Err = ""
	return LoadTicket{
		Level:  s.UserLevel,
		Topic:  s.SelectedTopic,
		gen:    s.generation,
		source: s.source,
	}
}

// StartGame transitions idle → loading, fetches questions for the current
// level and topic, and on completion enters playing with index, score and
// history reset. A fetch that errors or yields no questions returns the
// session to idle with Err set.
//
// The fetch blocks on the calling goroutine. Callers that want it off
// the UI loop use BeginLoad, run the ticket's Fetch concurrently, and
// apply the result with CompleteLoad; the session itself is only ever
// touched by its owning goroutine.
func (s *Session) StartGame(ctx context.Context) {
	t := s.BeginLoad()
	questions, err := t.Fetch(ctx)
	s.CompleteLoad(t, questions, err)
}

// CompleteLoad applies the result of a fetch, unless a restart or newer
// BeginLoad has superseded the ticket.
func (s *Session) CompleteLoad(t LoadTicket, questions []Question, err error) {
	if t.gen != s.generation {
		return
	}
	if err != nil || len(questions) == 0 {
		s.State = StateIdle
		s.Err = loadErrMessage
		return
	}
	s.Questions = questions
	s.CurrentQuestionIndex = 0
	s.Score = 0
	s.History = nil
	s.State = StatePlaying
}

// CurrentQuestion returns the active question, or false while there is
// none (idle, finished, or transiently during loading).
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.State != StatePlaying || s.CurrentQuestionIndex >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.CurrentQuestionIndex], true
}

// RecordAnswer scores the learner's input against the current question and
// appends an AnswerRecord holding the raw input. The index is not
// advanced; NextQuestion is a separate step so the UI can show feedback
// first. A missing current question is a no-op.
func (s *Session) RecordAnswer(userInput string) {
	if s.State != StatePlaying {
		return
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}

	correct := Equivalent(userInput, q.Answer)
	if correct {
		s.Score += PointsCorrect
	} else {
		s.Score -= PointsWrong
	}

	s.History = append(s.History, AnswerRecord{
		QuestionID: q.ID,
		Question:   q,
		UserInput:  userInput,
		IsCorrect:  correct,
	})
}

// NextQuestion advances to the next question, or finishes the game when
// the current question is the last one. The index is left unchanged on the
// finishing call. Valid only while playing.
func (s *Session) NextQuestion() {
	if s.State != StatePlaying {
		return
	}
	if s.CurrentQuestionIndex+1 < len(s.Questions) {
		s.CurrentQuestionIndex++
		return
	}
	s.State = StateFinished
}

// RestartGame returns the session to idle with questions, history, score
// and index cleared. Level and topic persist. Legal in any state, and
// idempotent; an in-flight load is invalidated.
func (s *Session) RestartGame() {
	s.generation++
	s.Questions = nil
	s.History = nil
	s.Score = 0
	s.CurrentQuestionIndex = 0
	s.State = StateIdle
}

// Answered reports whether the current question already has a history
// entry. The screens use this to enforce answer-before-advance ordering;
// the session itself does not.
func (s *Session) Answered() bool {
	return len(s.History) > s.CurrentQuestionIndex
}
