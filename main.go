package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/classifier"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/graph"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/strategy"
	"github.com/Chative-core-poc-v1/chatbot/internal/core"
	logx "github.com/Chative-core-poc-v1/chatbot/pkg/logger"
)

// AppConfig defines all configurable parameters for the demo,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment core.Environment `envconfig:"APP_ENV" default:"development"`

	Conversation model.ConversationConfig
	Classifier   model.ClassifierConfig
}

// trainingExamples pairs each example phrase with its canned reply.
var trainingExamples = []struct {
	example  string
	response string
}{
	{"oi", "Oi! Como vai?"},
	{"olá", "Oi! Como vai?"},
	{"tchau", "Até logo!"},
	{"adeus", "Até logo!"},
	{"me ajuda", "Claro, como posso ajudar?"},
	{"preciso de suporte", "Estou aqui para te ajudar!"},
}

type demo struct {
	title   string
	factory func(cfg AppConfig) func() (model.ResponseStrategy, error)
	queries []string
}

var demos = []demo{
	{
		title: "Chatbot com memória (regras)",
		factory: func(AppConfig) func() (model.ResponseStrategy, error) {
			return func() (model.ResponseStrategy, error) {
				return strategy.NewRuleStrategy(strategy.DefaultRules()...), nil
			}
		},
		queries: []string{"oi", "xablau", "repete"},
	},
	{
		title: "Chatbot com memória (ML)",
		factory: func(cfg AppConfig) func() (model.ResponseStrategy, error) {
			return func() (model.ResponseStrategy, error) {
				return newClassifierStrategy(cfg.Classifier)
			}
		},
		queries: []string{"oi", "oi", "adeus"},
	},
}

func newClassifierStrategy(cfg model.ClassifierConfig) (*strategy.ClassifierStrategy, error) {
	examples := make([]string, len(trainingExamples))
	responses := make([]string, len(trainingExamples))
	for i, te := range trainingExamples {
		examples[i] = te.example
		responses[i] = te.response
	}

	s := strategy.NewClassifierStrategy(classifier.NewNaiveBayes(cfg.Alpha))
	if err := s.Train(examples, responses); err != nil {
		return nil, fmt.Errorf("train classifier strategy: %w", err)
	}
	return s, nil
}

func main() {
	ctx := context.Background()
	// Load .env file
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
	logx.Init(logx.LoggerOpts{Environment: envCfg.Environment})

	for _, d := range demos {
		if err := runDemo(ctx, envCfg, d); err != nil {
			logx.Fatal().Err(err).Str("demo", d.title).Msg("demo failed")
		}
	}
}

func runDemo(ctx context.Context, cfg AppConfig, d demo) error {
	runner, err := graph.BuildResponseGraph(ctx, graph.Config{
		NewStrategy:  d.factory(cfg),
		Conversation: cfg.Conversation,
	})
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	conversationID := uuid.NewString()
	fmt.Printf("### %s ###\n", d.title)
	for _, q := range d.queries {
		response, err := runner.Invoke(ctx, model.QueryInput{
			ConversationID: conversationID,
			Query:          q,
		})
		if err != nil {
			return fmt.Errorf("respond to %q: %w", q, err)
		}
		fmt.Printf("> %s\n%s\n", q, response)
	}

	fmt.Println("--- memória ---")
	for _, line := range runner.Transcript(conversationID) {
		fmt.Println(line)
	}
	fmt.Println()
	return nil
}
