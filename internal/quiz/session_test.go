package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// stubSource returns a fixed question list, or an error when Fail is set.
// A non-nil Gate blocks Fetch until the channel is closed.
type stubSource struct {
	Questions []Question
	Fail      bool
	Gate      chan struct{}
	Calls     int
	LastLevel UserLevel
	LastTopic string
}

func (s *stubSource) Fetch(_ context.Context, level UserLevel, topicID string) ([]Question, error) {
	if s.Gate != nil {
		<-s.Gate
	}
	s.Calls++
	s.LastLevel = level
	s.LastTopic = topicID
	if s.Fail {
		return nil, errors.New("boom")
	}
	return s.Questions, nil
}

func threeQuestions() []Question {
	return []Question{
		{ID: 1, PreGap: "Das ist", PostGap: "Buch.", Answer: "mein", Translation: "That is my book."},
		{ID: 2, PreGap: "Ist das", PostGap: "Katze?", Answer: "deine", Translation: "Is that your cat?"},
		{ID: 3, PreGap: "Ich fahre mit", PostGap: "Fahrrad.", Answer: "meinem", Translation: "I ride my bike."},
	}
}

func startedSession(t *testing.T, questions []Question) *Session {
	t.Helper()
	s := NewSession(&stubSource{Questions: questions})
	s.StartGame(context.Background())
	if s.State != StatePlaying {
		t.Fatalf("State = %v after StartGame, want playing", s.State)
	}
	return s
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(&stubSource{})

	if s.State != StateIdle {
		t.Errorf("State = %v, want idle", s.State)
	}
	if s.UserLevel != LevelA2 {
		t.Errorf("UserLevel = %q, want A2", s.UserLevel)
	}
	if s.SelectedTopic != DefaultTopicID {
		t.Errorf("SelectedTopic = %q, want %q", s.SelectedTopic, DefaultTopicID)
	}
	if len(s.Questions) != 0 || len(s.History) != 0 || s.Score != 0 {
		t.Error("expected empty questions, history and zero score")
	}
}

func TestStartGame_EntersPlaying(t *testing.T) {
	src := &stubSource{Questions: threeQuestions()}
	s := NewSession(src)
	s.SetLevel(LevelB1)
	s.SetTopic("prepositionen")

	s.StartGame(context.Background())

	if s.State != StatePlaying {
		t.Fatalf("State = %v, want playing", s.State)
	}
	if len(s.Questions) != 3 {
		t.Fatalf("len(Questions) = %d, want 3", len(s.Questions))
	}
	if s.CurrentQuestionIndex != 0 || s.Score != 0 || len(s.History) != 0 {
		t.Error("expected index, score and history reset on start")
	}
	if src.LastLevel != LevelB1 || src.LastTopic != "prepositionen" {
		t.Errorf("fetched (%s, %s), want (B1, prepositionen)", src.LastLevel, src.LastTopic)
	}
}

func TestStartGame_SourceErrorReturnsToIdle(t *testing.T) {
	s := NewSession(&stubSource{Fail: true})

	s.StartGame(context.Background())

	if s.State != StateIdle {
		t.Fatalf("State = %v, want idle after failed load", s.State)
	}
	if s.Err == "" {
		t.Error("expected Err to carry a user-facing message")
	}

	// A successful retry clears the message.
	s.source = &stubSource{Questions: threeQuestions()}
	s.StartGame(context.Background())
	if s.Err != "" {
		t.Errorf("Err = %q after successful start, want empty", s.Err)
	}
}

func TestStartGame_EmptyListTreatedAsFailure(t *testing.T) {
	s := NewSession(&stubSource{Questions: nil})

	s.StartGame(context.Background())

	if s.State != StateIdle {
		t.Fatalf("State = %v, want idle when the source yields no questions", s.State)
	}
	if s.Err == "" {
		t.Error("expected Err to be set")
	}
}

func TestRecordAnswer_Scoring(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		input     string
		correct   bool
		wantScore int
	}{
		{"exact match", "meinem", "meinem", true, 10},
		{"case folded", "meinem", "Meinem", true, 10},
		{"whitespace trimmed", "meinem", "  meinem ", true, 10},
		{"sharp s folds to ss", "groß", "GROSS", true, 10},
		{"umlaut case pair", "über", "Über", true, 10},
		{"wrong answer", "meinem", "mein", false, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startedSession(t, []Question{
				{ID: 1, PreGap: "x", PostGap: "y", Answer: tt.answer},
			})

			s.RecordAnswer(tt.input)

			if s.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", s.Score, tt.wantScore)
			}
			if len(s.History) != 1 {
				t.Fatalf("len(History) = %d, want 1", len(s.History))
			}
			rec := s.History[0]
			if rec.IsCorrect != tt.correct {
				t.Errorf("IsCorrect = %v, want %v", rec.IsCorrect, tt.correct)
			}
			if rec.UserInput != tt.input {
				t.Errorf("UserInput = %q, want raw input %q", rec.UserInput, tt.input)
			}
		})
	}
}

func TestRecordAnswer_ScoreCanGoNegative(t *testing.T) {
	s := startedSession(t, threeQuestions())

	s.RecordAnswer("falsch")
	s.NextQuestion()
	s.RecordAnswer("falsch")

	if s.Score != -10 {
		t.Errorf("Score = %d, want -10", s.Score)
	}
}

func TestRecordAnswer_DoesNotAdvanceIndex(t *testing.T) {
	s := startedSession(t, threeQuestions())

	s.RecordAnswer("mein")

	if s.CurrentQuestionIndex != 0 {
		t.Errorf("CurrentQuestionIndex = %d, want 0 (advance is separate)", s.CurrentQuestionIndex)
	}
}

func TestHistory_AppendOnlyInOrder(t *testing.T) {
	questions := make([]Question, 5)
	for i := range questions {
		questions[i] = Question{ID: i + 1, Answer: "a"}
	}
	s := startedSession(t, questions)

	inputs := []string{"one", "two", "three", "four"}
	for i, in := range inputs {
		s.RecordAnswer(in)
		if len(s.History) != i+1 {
			t.Fatalf("len(History) = %d after %d answers", len(s.History), i+1)
		}
		s.NextQuestion()
	}

	for i, in := range inputs {
		if s.History[i].UserInput != in {
			t.Errorf("History[%d].UserInput = %q, want %q", i, s.History[i].UserInput, in)
		}
		if s.History[i].QuestionID != questions[i].ID {
			t.Errorf("History[%d].QuestionID = %d, want %d", i, s.History[i].QuestionID, questions[i].ID)
		}
	}
}

func TestNextQuestion_Termination(t *testing.T) {
	s := startedSession(t, threeQuestions())

	for i := 0; i < 3; i++ {
		if s.State != StatePlaying {
			t.Fatalf("State = %v before advance %d, want playing", s.State, i+1)
		}
		s.RecordAnswer("mein")
		s.NextQuestion()
	}

	if s.State != StateFinished {
		t.Fatalf("State = %v after final advance, want finished", s.State)
	}
	if s.CurrentQuestionIndex != 2 {
		t.Errorf("CurrentQuestionIndex = %d, want 2 (unchanged on finishing call)", s.CurrentQuestionIndex)
	}
	if len(s.History) != 3 {
		t.Errorf("len(History) = %d, want 3", len(s.History))
	}
}

func TestIndexInvariant_AllOperations(t *testing.T) {
	s := startedSession(t, threeQuestions())

	check := func(op string) {
		t.Helper()
		if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex > len(s.Questions) {
			t.Fatalf("after %s: index %d out of [0, %d]", op, s.CurrentQuestionIndex, len(s.Questions))
		}
		if s.State == StatePlaying && len(s.Questions) == 0 {
			t.Fatalf("after %s: playing with no questions", op)
		}
	}

	for i := 0; i < 6; i++ {
		s.RecordAnswer("x")
		check("RecordAnswer")
		s.NextQuestion()
		check(fmt.Sprintf("NextQuestion #%d", i+1))
	}
	s.RestartGame()
	check("RestartGame")
}

func TestRestartGame_Idempotent(t *testing.T) {
	s := startedSession(t, threeQuestions())
	s.SetLevel(LevelB1)
	s.RecordAnswer("mein")
	s.NextQuestion()

	s.RestartGame()
	s.RestartGame()

	if s.State != StateIdle {
		t.Errorf("State = %v, want idle", s.State)
	}
	if len(s.Questions) != 0 || len(s.History) != 0 {
		t.Error("expected questions and history cleared")
	}
	if s.Score != 0 || s.CurrentQuestionIndex != 0 {
		t.Error("expected score and index zeroed")
	}
	if s.UserLevel != LevelB1 {
		t.Errorf("UserLevel = %q, want B1 (persists across restart)", s.UserLevel)
	}
	if s.SelectedTopic != DefaultTopicID {
		t.Errorf("SelectedTopic = %q, want %q (persists across restart)", s.SelectedTopic, DefaultTopicID)
	}
}

func TestLevelAndTopicChange_DoNotTouchProgress(t *testing.T) {
	s := startedSession(t, threeQuestions())
	s.RecordAnswer("mein")

	s.SetLevel(LevelB1)
	s.SetTopic("prepositionen")

	if s.State != StatePlaying {
		t.Errorf("State = %v, want playing", s.State)
	}
	if len(s.History) != 1 || s.Score != 10 {
		t.Error("expected history and score untouched by SetLevel/SetTopic")
	}
	if s.Questions[0].Answer != "mein" {
		t.Error("expected generated questions untouched")
	}
}

func TestStaleLoad_DiscardedAfterRestart(t *testing.T) {
	s := NewSession(&stubSource{Questions: threeQuestions()})

	// A load that completes after the session was restarted.
	stale := s.BeginLoad()
	s.RestartGame()

	s.CompleteLoad(stale, threeQuestions(), nil)

	if s.State != StateIdle {
		t.Errorf("State = %v, want idle (stale completion discarded)", s.State)
	}
	if len(s.Questions) != 0 {
		t.Error("expected stale questions not to be applied")
	}
}

func TestStaleLoad_DiscardedAfterNewerStart(t *testing.T) {
	fresh := threeQuestions()[:2]
	s := NewSession(&stubSource{Questions: fresh})

	stale := s.BeginLoad()
	s.StartGame(context.Background())

	s.CompleteLoad(stale, threeQuestions(), nil)

	if len(s.Questions) != len(fresh) {
		t.Errorf("len(Questions) = %d, want %d (newer start wins)", len(s.Questions), len(fresh))
	}
	if s.State != StatePlaying {
		t.Errorf("State = %v, want playing", s.State)
	}
}

func TestBeginLoad_TicketSnapshotsLevelAndTopic(t *testing.T) {
	src := &stubSource{Questions: threeQuestions()}
	s := NewSession(src)
	s.SetLevel(LevelB1)
	s.SetTopic("prepositionen")

	ticket := s.BeginLoad()
	s.SetLevel(LevelA2)
	s.SetTopic(DefaultTopicID)

	if _, err := ticket.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if src.LastLevel != LevelB1 || src.LastTopic != "prepositionen" {
		t.Errorf("fetched (%s, %s), want the snapshot (B1, prepositionen)", src.LastLevel, src.LastTopic)
	}
}

func TestLoad_FetchRunsOffOwningGoroutine(t *testing.T) {
	src := &stubSource{Questions: threeQuestions(), Gate: make(chan struct{})}
	s := NewSession(src)

	ticket := s.BeginLoad()
	if s.State != StateLoading {
		t.Fatalf("State = %v after BeginLoad, want loading", s.State)
	}

	type result struct {
		questions []Question
		err       error
	}
	done := make(chan result, 1)
	go func() {
		q, err := ticket.Fetch(context.Background())
		done <- result{q, err}
	}()

	// The owning goroutine keeps reading session state while the fetch
	// is in flight; the race detector verifies the ticket isolates it.
	if s.Err != "" {
		t.Errorf("Err = %q during load, want empty", s.Err)
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("expected no current question while loading")
	}
	close(src.Gate)

	r := <-done
	s.CompleteLoad(ticket, r.questions, r.err)
	if s.State != StatePlaying {
		t.Fatalf("State = %v after CompleteLoad, want playing", s.State)
	}
	if len(s.Questions) != 3 {
		t.Errorf("len(Questions) = %d, want 3", len(s.Questions))
	}
}

func TestRecordAnswer_NoOpOutsidePlaying(t *testing.T) {
	s := NewSession(&stubSource{})

	s.RecordAnswer("mein")
	s.NextQuestion()

	if s.Score != 0 || len(s.History) != 0 || s.State != StateIdle {
		t.Error("expected RecordAnswer/NextQuestion to be no-ops while idle")
	}
}

func TestAnswered(t *testing.T) {
	s := startedSession(t, threeQuestions())

	if s.Answered() {
		t.Error("expected Answered() false before any answer")
	}
	s.RecordAnswer("mein")
	if !s.Answered() {
		t.Error("expected Answered() true after answering")
	}
	s.NextQuestion()
	if s.Answered() {
		t.Error("expected Answered() false on the next question")
	}
}
