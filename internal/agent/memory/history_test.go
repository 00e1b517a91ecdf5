package memory

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/cloudwego/eino/schema"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
)

func TestHistory_KeepsLastNInOrder(t *testing.T) {
	for _, capacity := range []int{1, 2, 5, 7} {
		for _, added := range []int{0, 1, capacity, capacity + 1, 3*capacity + 2} {
			t.Run(fmt.Sprintf("cap=%d/added=%d", capacity, added), func(t *testing.T) {
				h := New(capacity)
				for i := 0; i < added; i++ {
					h.Add(fmt.Sprintf("in-%d", i), fmt.Sprintf("out-%d", i))
				}

				first := added - capacity
				if first < 0 {
					first = 0
				}
				want := make([]model.HistoryEntry, 0, capacity)
				for i := first; i < added; i++ {
					want = append(want, model.HistoryEntry{
						UserInput:   fmt.Sprintf("in-%d", i),
						BotResponse: fmt.Sprintf("out-%d", i),
					})
				}

				got := h.Entries()
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("Entries() = %v, want %v", got, want)
				}
				if h.Len() != len(want) {
					t.Errorf("Len() = %d, want %d", h.Len(), len(want))
				}
				if h.Len() > h.Cap() {
					t.Errorf("Len() = %d exceeds Cap() = %d", h.Len(), h.Cap())
				}
			})
		}
	}
}

func TestHistory_Latest(t *testing.T) {
	h := New(2)
	if _, ok := h.Latest(); ok {
		t.Fatal("Latest() on empty history reported an entry")
	}

	h.Add("oi", "Oi! Como você está?")
	h.Add("xablau", "Desculpe")
	h.Add("repete", "Você disse 'xablau' antes.")

	got, ok := h.Latest()
	if !ok {
		t.Fatal("Latest() reported empty history")
	}
	want := model.HistoryEntry{UserInput: "repete", BotResponse: "Você disse 'xablau' antes."}
	if got != want {
		t.Errorf("Latest() = %v, want %v", got, want)
	}
}

func TestHistory_DefaultCapacityAndClamp(t *testing.T) {
	if got := New(DefaultCapacity).Cap(); got != 5 {
		t.Errorf("New(DefaultCapacity).Cap() = %d, want 5", got)
	}
	for _, c := range []int{0, -3} {
		if got := New(c).Cap(); got != 1 {
			t.Errorf("New(%d).Cap() = %d, want 1", c, got)
		}
	}
}

func TestHistory_EntriesIsACopy(t *testing.T) {
	h := New(3)
	h.Add("oi", "A")
	entries := h.Entries()
	entries[0].UserInput = "mutated"

	if latest, _ := h.Latest(); latest.UserInput != "oi" {
		t.Errorf("history changed through Entries() copy: %q", latest.UserInput)
	}
}

func TestHistory_Messages(t *testing.T) {
	h := New(1)
	h.Add("oi", "A")
	h.Add("tchau", "B")

	msgs := h.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len(Messages()) = %d, want 2", len(msgs))
	}
	if msgs[0].Role != schema.User || msgs[0].Content != "tchau" {
		t.Errorf("msgs[0] = %s %q, want user %q", msgs[0].Role, msgs[0].Content, "tchau")
	}
	if msgs[1].Role != schema.Assistant || msgs[1].Content != "B" {
		t.Errorf("msgs[1] = %s %q, want assistant %q", msgs[1].Role, msgs[1].Content, "B")
	}
}

func TestHistory_Reset(t *testing.T) {
	h := New(2)
	h.Add("a", "1")
	h.Add("b", "2")
	h.Add("c", "3")
	h.Reset()

	if h.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", h.Len())
	}
	h.Add("d", "4")
	if got := h.Entries(); len(got) != 1 || got[0].UserInput != "d" {
		t.Errorf("Entries() after Reset+Add = %v", got)
	}
}
