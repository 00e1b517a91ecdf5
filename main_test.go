package main

import (
	"strings"
	"testing"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/conversation"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/strategy"
)

func TestDemoClassifierConversation(t *testing.T) {
	s, err := newClassifierStrategy(model.ClassifierConfig{Alpha: 1})
	if err != nil {
		t.Fatalf("newClassifierStrategy() error: %v", err)
	}
	c := conversation.New(s, 5)

	steps := []struct {
		in   string
		want string
	}{
		{"oi", "Oi! Como vai?"},
		{"oi", strategy.RepeatPrefix + "Oi! Como vai?"},
		{"adeus", "Até logo!"},
		{"me ajuda por favor", "Claro, como posso ajudar?"},
	}
	for _, st := range steps {
		got, err := c.Respond(st.in)
		if err != nil {
			t.Fatalf("Respond(%q) error: %v", st.in, err)
		}
		if got != st.want {
			t.Errorf("Respond(%q) = %q, want %q", st.in, got, st.want)
		}
	}
}

func TestDemosHaveQueries(t *testing.T) {
	for _, d := range demos {
		if len(d.queries) == 0 || strings.TrimSpace(d.title) == "" {
			t.Errorf("demo %q is incomplete", d.title)
		}
		factory := d.factory(AppConfig{Classifier: model.ClassifierConfig{Alpha: 1}})
		if _, err := factory(); err != nil {
			t.Errorf("demo %q factory error: %v", d.title, err)
		}
	}
}
