package strategy

import (
	"errors"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/classifier"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/textnorm"
	errx "github.com/Chative-core-poc-v1/chatbot/internal/core/error"
	logx "github.com/Chative-core-poc-v1/chatbot/pkg/logger"
)

// RepeatPrefix marks a reply to a question identical to the previous turn.
const RepeatPrefix = "Você já me perguntou isso, mas eu repito: "

// ClassifierStrategy answers by classifying the message against labelled
// examples and returning the response attached to the predicted label.
type ClassifierStrategy struct {
	trainer   classifier.Trainer
	predictor classifier.Predictor
	responses []string
}

func NewClassifierStrategy(trainer classifier.Trainer) *ClassifierStrategy {
	return &ClassifierStrategy{trainer: trainer}
}

func (s *ClassifierStrategy) Name() string { return "classifier" }

// Trained reports whether Train has succeeded.
func (s *ClassifierStrategy) Trained() bool { return s.predictor != nil }

// Train fits the model so that examples[i] maps to responses[i]. Both slices
// must be non-empty and of equal length. A failed call leaves the strategy
// in its previous state.
func (s *ClassifierStrategy) Train(examples, responses []string) error {
	if len(examples) == 0 || len(responses) == 0 {
		return errx.UntrainedModel("training needs at least one example and response")
	}
	if len(examples) != len(responses) {
		return errx.UntrainedModel("got %d examples but %d responses", len(examples), len(responses))
	}
	if s.trainer == nil {
		return errx.UntrainedModel("no trainer configured")
	}

	labels := make([]int, len(responses))
	for i := range labels {
		labels[i] = i
	}
	predictor, err := s.trainer.Fit(examples, labels)
	if err != nil {
		return errx.New(errors.Join(errx.ErrUntrainedModel, err), errx.CodeUntrainedModel, "fit classifier")
	}

	s.predictor = predictor
	s.responses = append([]string(nil), responses...)
	logx.Debug().Str("strategy", s.Name()).Int("examples", len(examples)).Msg("classifier trained")
	return nil
}

func (s *ClassifierStrategy) Generate(message string, history model.HistoryReader) (string, error) {
	if !s.Trained() {
		return "", errx.InvalidState("classifier strategy used before training")
	}

	label := s.predictor.Predict(message)
	if label < 0 || label >= len(s.responses) {
		logx.Error().
			Str("strategy", s.Name()).
			Int("label", label).
			Int("responses", len(s.responses)).
			Msg("classifier predicted label out of range")
		return "", errx.InternalInvariant("predicted label %d outside [0, %d)", label, len(s.responses))
	}
	response := s.responses[label]

	// Only the immediately preceding turn counts as a repeat.
	if history != nil {
		if last, ok := history.Latest(); ok && textnorm.EqualFold(last.UserInput, message) {
			response = RepeatPrefix + response
		}
	}
	return response, nil
}

var _ model.ResponseStrategy = (*ClassifierStrategy)(nil)
