package observers

import (
	"context"

	einocb "github.com/cloudwego/eino/callbacks"

	logx "github.com/Chative-core-poc-v1/chatbot/pkg/logger"
)

// NewAllCallbacks returns the handler attached to every graph invocation.
// It logs node boundaries and failures at debug/error level.
func NewAllCallbacks() einocb.Handler {
	return einocb.NewHandlerBuilder().
		OnStartFn(func(ctx context.Context, info *einocb.RunInfo, input einocb.CallbackInput) context.Context {
			if info != nil {
				logx.Debug().Str("node", info.Name).Str("type", info.Type).Msg("node start")
			}
			return ctx
		}).
		OnEndFn(func(ctx context.Context, info *einocb.RunInfo, output einocb.CallbackOutput) context.Context {
			if info != nil {
				logx.Debug().Str("node", info.Name).Str("type", info.Type).Msg("node end")
			}
			return ctx
		}).
		OnErrorFn(func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			ev := logx.Error().Err(err)
			if info != nil {
				ev = ev.Str("node", info.Name).Str("type", info.Type)
			}
			ev.Msg("node failed")
			return ctx
		}).
		Build()
}
