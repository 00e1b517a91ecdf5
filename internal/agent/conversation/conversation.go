// Package conversation holds the controller that routes each message through
// a response strategy and records the exchange in bounded history.
package conversation

import (
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/memory"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
)

// Conversation owns one strategy and one history. It is not safe for
// concurrent use; callers serialize access per conversation.
type Conversation struct {
	strategy model.ResponseStrategy
	history  *memory.History
}

// New creates a conversation keeping historySize turns. A non-positive size
// uses memory.DefaultCapacity.
func New(strategy model.ResponseStrategy, historySize int) *Conversation {
	if historySize <= 0 {
		historySize = memory.DefaultCapacity
	}
	return &Conversation{strategy: strategy, history: memory.New(historySize)}
}

// Respond generates a reply and records the exchange. Strategy errors are
// returned unchanged and nothing is recorded.
func (c *Conversation) Respond(message string) (string, error) {
	response, err := c.strategy.Generate(message, c.history)
	if err != nil {
		return "", err
	}
	c.history.Add(message, response)
	return response, nil
}

// History exposes the recorded turns read-only.
func (c *Conversation) History() *memory.History { return c.history }

func (c *Conversation) Strategy() string { return c.strategy.Name() }
