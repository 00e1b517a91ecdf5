package graph

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/graph/conversations"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/graph/nodes"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/graph/observers"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
	logx "github.com/Chative-core-poc-v1/chatbot/pkg/logger"
)

// Runner executes the compiled graph for one query and exposes the
// resulting conversation state.
type Runner interface {
	Invoke(ctx context.Context, in model.QueryInput) (string, error)
	Transcript(conversationID string) []string
}

// Config holds everything needed to compose the response graph end-to-end.
type Config struct {
	NewStrategy  conversations.StrategyFactory
	Conversation model.ConversationConfig
}

// GraphConfig holds all configuration needed to build the graph
type GraphConfig struct {
	MessagesManager *conversations.MessagesManager
}

// GraphBuilder handles the construction of the conversation graph
type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[model.QueryInput, *schema.Message]
}

type graphRunner struct {
	runnable compose.Runnable[model.QueryInput, *schema.Message]
	mm       *conversations.MessagesManager
}

func (r *graphRunner) Invoke(ctx context.Context, in model.QueryInput) (string, error) {
	out, err := r.runnable.Invoke(ctx, in, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}

func (r *graphRunner) Transcript(conversationID string) []string {
	return r.mm.Transcript(conversationID)
}

// BuildResponseGraph creates the MessagesManager, builds the graph, and returns a Runner.
func BuildResponseGraph(ctx context.Context, cfg Config) (Runner, error) {
	if cfg.NewStrategy == nil {
		return nil, fmt.Errorf("strategy factory is nil")
	}

	mm := conversations.NewMessagesManager(cfg.NewStrategy, cfg.Conversation)

	runnable, err := BuildGraph(ctx, &GraphConfig{MessagesManager: mm})
	if err != nil {
		return nil, err
	}

	logx.Debug().Msg("Response graph built successfully")
	return &graphRunner{runnable: runnable, mm: mm}, nil
}

// BuildGraph constructs and returns the compiled conversation graph
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[model.QueryInput, *schema.Message], error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.MessagesManager == nil {
		return nil, fmt.Errorf("messages manager is nil")
	}

	builder := &GraphBuilder{
		config: config,
		graph:  compose.NewGraph[model.QueryInput, *schema.Message](),
	}

	if err := builder.addNodes(); err != nil {
		return nil, err
	}
	if err := builder.addEdges(); err != nil {
		return nil, err
	}

	return builder.compile(ctx)
}

// addNodes adds all processing nodes to the graph
func (b *GraphBuilder) addNodes() error {
	if err := b.graph.AddLambdaNode(nodes.NodeInputValidator, nodes.NewInputValidatorNode()); err != nil {
		return fmt.Errorf("add %s node: %w", nodes.NodeInputValidator, err)
	}
	if err := b.graph.AddLambdaNode(nodes.NodeResponder, nodes.NewResponderNode(b.config.MessagesManager)); err != nil {
		return fmt.Errorf("add %s node: %w", nodes.NodeResponder, err)
	}
	return nil
}

// addEdges creates the flow connections between nodes
func (b *GraphBuilder) addEdges() error {
	edges := [][2]string{
		{compose.START, nodes.NodeInputValidator},
		{nodes.NodeInputValidator, nodes.NodeResponder},
		{nodes.NodeResponder, compose.END},
	}

	for _, edge := range edges {
		if err := b.graph.AddEdge(edge[0], edge[1]); err != nil {
			logx.Error().Err(err).Str("from", edge[0]).Str("to", edge[1]).Msg("Error adding edge")
			return fmt.Errorf("add edge %s -> %s: %w", edge[0], edge[1], err)
		}
	}
	return nil
}

// compile finalizes and compiles the graph
func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.QueryInput, *schema.Message], error) {
	runnable, err := b.graph.Compile(ctx)
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}
