package conversations

import (
	"context"
	"fmt"
	"sync"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/conversation"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
	logx "github.com/Chative-core-poc-v1/chatbot/pkg/logger"
)

// StrategyFactory builds the strategy for a new conversation. Each
// conversation gets its own instance.
type StrategyFactory func() (model.ResponseStrategy, error)

// session pairs a conversation with the lock that serializes its turns.
type session struct {
	mu   sync.Mutex
	conv *conversation.Conversation
}

// MessagesManager keeps one Conversation per conversation ID.
type MessagesManager struct {
	newStrategy StrategyFactory
	historySize int

	mu       sync.Mutex
	sessions map[string]*session
}

func NewMessagesManager(factory StrategyFactory, config model.ConversationConfig) *MessagesManager {
	return &MessagesManager{
		newStrategy: factory,
		historySize: config.HistorySize,
		sessions:    make(map[string]*session),
	}
}

// Respond routes query to the conversation identified by conversationID,
// creating it on first use.
func (cm *MessagesManager) Respond(ctx context.Context, conversationID string, query string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s, err := cm.session(conversationID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	response, err := s.conv.Respond(query)
	if err != nil {
		logx.Error().Err(err).
			Str("conversation_id", conversationID).
			Str("strategy", s.conv.Strategy()).
			Msg("failed to generate response")
		return "", err
	}
	logx.Debug().
		Str("conversation_id", conversationID).
		Str("strategy", s.conv.Strategy()).
		Int("history_len", s.conv.History().Len()).
		Msg("response generated")
	return response, nil
}

// History returns a chronological copy of the conversation's recent turns.
// Unknown conversations have empty history.
func (cm *MessagesManager) History(conversationID string) []model.HistoryEntry {
	s := cm.lookup(conversationID)
	if s == nil {
		return []model.HistoryEntry{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.History().Entries()
}

// Transcript renders the recent turns as user/assistant lines.
func (cm *MessagesManager) Transcript(conversationID string) []string {
	s := cm.lookup(conversationID)
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.conv.History().Messages()
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Content))
	}
	return lines
}

// Clear forgets the conversation entirely; the next message starts fresh.
func (cm *MessagesManager) Clear(conversationID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	delete(cm.sessions, conversationID)
}

// Count returns the number of live conversations.
func (cm *MessagesManager) Count() int {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return len(cm.sessions)
}

func (cm *MessagesManager) lookup(conversationID string) *session {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	return cm.sessions[conversationID]
}

func (cm *MessagesManager) session(conversationID string) (*session, error) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if s, ok := cm.sessions[conversationID]; ok {
		return s, nil
	}
	if cm.newStrategy == nil {
		return nil, fmt.Errorf("strategy factory is nil")
	}
	strategy, err := cm.newStrategy()
	if err != nil {
		return nil, fmt.Errorf("create strategy: %w", err)
	}
	s := &session{conv: conversation.New(strategy, cm.historySize)}
	cm.sessions[conversationID] = s
	logx.Debug().Str("conversation_id", conversationID).Str("strategy", strategy.Name()).Msg("conversation started")
	return s, nil
}
