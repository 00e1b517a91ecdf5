package conversation

import (
	"errors"
	"strings"
	"testing"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/classifier"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/strategy"
	errx "github.com/Chative-core-poc-v1/chatbot/internal/core/error"
)

// recordingStrategy echoes the message and remembers the history length it saw.
type recordingStrategy struct {
	seen []int
	err  error
}

func (r *recordingStrategy) Name() string { return "recording" }

func (r *recordingStrategy) Generate(message string, history model.HistoryReader) (string, error) {
	r.seen = append(r.seen, history.Len())
	if r.err != nil {
		return "", r.err
	}
	return "echo: " + message, nil
}

func TestConversation_RecordsEachExchange(t *testing.T) {
	rs := &recordingStrategy{}
	c := New(rs, 2)

	for _, in := range []string{"a", "b", "c"} {
		got, err := c.Respond(in)
		if err != nil {
			t.Fatalf("Respond(%q) error: %v", in, err)
		}
		if got != "echo: "+in {
			t.Errorf("Respond(%q) = %q", in, got)
		}
	}

	if want := []int{0, 1, 2}; len(rs.seen) != 3 || rs.seen[0] != want[0] || rs.seen[1] != want[1] || rs.seen[2] != want[2] {
		t.Errorf("history lengths seen by strategy = %v, want %v", rs.seen, want)
	}
	entries := c.History().Entries()
	if len(entries) != 2 || entries[0].UserInput != "b" || entries[1].UserInput != "c" {
		t.Errorf("History().Entries() = %v, want last two exchanges", entries)
	}
	if c.Strategy() != "recording" {
		t.Errorf("Strategy() = %q", c.Strategy())
	}
}

func TestConversation_PropagatesErrorsWithoutRecording(t *testing.T) {
	boom := errors.New("boom")
	c := New(&recordingStrategy{err: boom}, 5)

	if _, err := c.Respond("oi"); !errors.Is(err, boom) {
		t.Fatalf("Respond() error = %v, want %v", err, boom)
	}
	if c.History().Len() != 0 {
		t.Errorf("history recorded a failed exchange")
	}
}

func TestConversation_DefaultHistorySize(t *testing.T) {
	c := New(&recordingStrategy{}, 0)
	if got := c.History().Cap(); got != 5 {
		t.Errorf("History().Cap() = %d, want 5", got)
	}
}

func TestConversation_RulesUseMemory(t *testing.T) {
	c := New(strategy.NewRuleStrategy(strategy.DefaultRules()...), 5)

	steps := []struct {
		in       string
		contains string
	}{
		{"oi", "Como você está"},
		{"xablau", "'oi'"},
		{"repete", "'xablau'"},
	}
	for _, st := range steps {
		got, err := c.Respond(st.in)
		if err != nil {
			t.Fatalf("Respond(%q) error: %v", st.in, err)
		}
		if !strings.Contains(got, st.contains) {
			t.Errorf("Respond(%q) = %q, want it to contain %q", st.in, got, st.contains)
		}
	}
}

func TestConversation_ClassifierRepeat(t *testing.T) {
	s := strategy.NewClassifierStrategy(classifier.NewNaiveBayes(classifier.DefaultAlpha))
	if err := s.Train([]string{"oi", "tchau"}, []string{"A", "B"}); err != nil {
		t.Fatalf("Train() error: %v", err)
	}
	c := New(s, 5)

	first, err := c.Respond("oi")
	if err != nil {
		t.Fatalf("Respond() error: %v", err)
	}
	if first != "A" {
		t.Fatalf("first Respond(oi) = %q, want %q", first, "A")
	}

	second, err := c.Respond("oi")
	if err != nil {
		t.Fatalf("Respond() error: %v", err)
	}
	if !strings.Contains(second, strategy.RepeatPrefix) || !strings.Contains(second, "A") {
		t.Errorf("second Respond(oi) = %q, want repeat marker and %q", second, "A")
	}
}

func TestConversation_UntrainedClassifier(t *testing.T) {
	c := New(strategy.NewClassifierStrategy(classifier.NewNaiveBayes(1)), 5)
	if _, err := c.Respond("oi"); !errors.Is(err, errx.ErrInvalidState) {
		t.Fatalf("Respond() error = %v, want ErrInvalidState", err)
	}
}
