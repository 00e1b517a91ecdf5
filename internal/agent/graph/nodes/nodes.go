package nodes

import (
	"context"
	"strings"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/graph/conversations"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
	errx "github.com/Chative-core-poc-v1/chatbot/internal/core/error"
)

const (
	NodeInputValidator = "input_validator"
	NodeResponder      = "responder"
)

// NewInputValidatorNode trims the conversation ID and rejects requests
// without one or without a query. The query itself is passed through
// untouched so history records exactly what the user typed.
func NewInputValidatorNode() *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.QueryInput) (model.QueryInput, error) {
		in.ConversationID = strings.TrimSpace(in.ConversationID)
		if in.ConversationID == "" {
			return model.QueryInput{}, errx.InvalidInput("conversation id is empty")
		}
		if strings.TrimSpace(in.Query) == "" {
			return model.QueryInput{}, errx.InvalidInput("query is empty")
		}
		return in, nil
	})
}

// NewResponderNode runs the query through the conversation and wraps the
// reply as an assistant message.
func NewResponderNode(mm *conversations.MessagesManager) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.QueryInput) (*schema.Message, error) {
		reply, err := mm.Respond(ctx, in.ConversationID, in.Query)
		if err != nil {
			return nil, err
		}
		return schema.AssistantMessage(reply, nil), nil
	})
}
