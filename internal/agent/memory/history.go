// Package memory provides the bounded recent-turn log a Conversation keeps.
package memory

import (
	"github.com/cloudwego/eino/schema"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
)

// DefaultCapacity is the number of turns kept when no size is configured.
const DefaultCapacity = 5

// History is a fixed-capacity FIFO of exchanges backed by a ring buffer.
// When full, adding an entry evicts the oldest one. It is not safe for
// concurrent use; a single Conversation owns it.
type History struct {
	entries []model.HistoryEntry
	start   int // index of the oldest entry
	size    int
}

// New returns an empty History holding at most capacity entries.
// Capacities below 1 are clamped to 1.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{entries: make([]model.HistoryEntry, capacity)}
}

// Add records an exchange, evicting the oldest one when full.
func (h *History) Add(input, response string) {
	entry := model.HistoryEntry{UserInput: input, BotResponse: response}
	if h.size < len(h.entries) {
		h.entries[(h.start+h.size)%len(h.entries)] = entry
		h.size++
		return
	}
	h.entries[h.start] = entry
	h.start = (h.start + 1) % len(h.entries)
}

func (h *History) Latest() (model.HistoryEntry, bool) {
	if h.size == 0 {
		return model.HistoryEntry{}, false
	}
	return h.entries[(h.start+h.size-1)%len(h.entries)], true
}

func (h *History) Len() int { return h.size }

func (h *History) Cap() int { return len(h.entries) }

func (h *History) Entries() []model.HistoryEntry {
	out := make([]model.HistoryEntry, h.size)
	for i := range out {
		out[i] = h.entries[(h.start+i)%len(h.entries)]
	}
	return out
}

// Messages renders the held exchanges as alternating user and assistant
// messages, oldest first.
func (h *History) Messages() []*schema.Message {
	msgs := make([]*schema.Message, 0, h.size*2)
	for _, e := range h.Entries() {
		msgs = append(msgs,
			schema.UserMessage(e.UserInput),
			schema.AssistantMessage(e.BotResponse, nil),
		)
	}
	return msgs
}

// Reset drops every entry while keeping the capacity.
func (h *History) Reset() {
	clear(h.entries)
	h.start = 0
	h.size = 0
}

var _ model.HistoryReader = (*History)(nil)
