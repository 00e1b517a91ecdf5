package strategy

import (
	"fmt"
	"strings"

	"github.com/Chative-core-poc-v1/chatbot/internal/agent/model"
	"github.com/Chative-core-poc-v1/chatbot/internal/agent/textnorm"
	logx "github.com/Chative-core-poc-v1/chatbot/pkg/logger"
)

const (
	// FallbackReply is returned when no rule matches and there is no history.
	FallbackReply = "Desculpe, não entendi. Pode reformular?"
	// ContextReplyFormat embeds the previous user input when no rule matches.
	ContextReplyFormat = "Você disse '%s' antes. Quer continuar nesse assunto?"
)

// Rule maps a keyword to a canned response.
type Rule struct {
	Keyword  string
	Response string
}

// DefaultRules returns the stock greeting/farewell/help table.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "oi", Response: "Oi! Como você está?"},
		{Keyword: "tchau", Response: "Até logo! Foi bom conversar com você."},
		{Keyword: "ajuda", Response: "Claro! Eu posso te ajudar com dúvidas simples."},
	}
}

// RuleStrategy answers with the response of the first rule whose keyword
// occurs in the message. Rules are fixed at construction.
type RuleStrategy struct {
	rules []Rule
}

// NewRuleStrategy builds a strategy over rules in priority order. Keywords
// are case-folded; empty keywords are skipped since they would match anything.
func NewRuleStrategy(rules ...Rule) *RuleStrategy {
	kept := make([]Rule, 0, len(rules))
	for _, r := range rules {
		kw := textnorm.Fold(r.Keyword)
		if kw == "" {
			logx.Warn().Str("response", r.Response).Msg("skipping rule with empty keyword")
			continue
		}
		kept = append(kept, Rule{Keyword: kw, Response: r.Response})
	}
	return &RuleStrategy{rules: kept}
}

func (s *RuleStrategy) Name() string { return "rules" }

// Rules returns a copy of the rule table in match order.
func (s *RuleStrategy) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Generate never fails; the error is always nil.
func (s *RuleStrategy) Generate(message string, history model.HistoryReader) (string, error) {
	msg := textnorm.Fold(message)
	for _, r := range s.rules {
		if strings.Contains(msg, r.Keyword) {
			logx.Debug().Str("strategy", s.Name()).Str("keyword", r.Keyword).Msg("rule matched")
			return r.Response, nil
		}
	}

	if history != nil {
		if last, ok := history.Latest(); ok {
			return fmt.Sprintf(ContextReplyFormat, last.UserInput), nil
		}
	}
	return FallbackReply, nil
}

var _ model.ResponseStrategy = (*RuleStrategy)(nil)
