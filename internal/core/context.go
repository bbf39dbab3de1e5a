package core

import (
	"context"
	"io"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const (
	SOURCE_LOG_FIELD_NAME     = "src"
	CONTEXT_ID_LOG_FIELD_NAME = "ctxId"
)

var nopLogger = zerolog.Nop()

// A Context is passed to every runtime operation. It carries the standard
// library context, an identifier and the logger. Contexts are cheap to create
// and are not shared between unrelated evaluations.
type Context struct {
	context.Context

	id     ulid.ULID
	logger zerolog.Logger
}

type ContextConfig struct {
	//optional, defaults to context.Background()
	ParentStdlibContext context.Context

	//optional, defaults to a nop logger
	LogOut io.Writer

	//optional, has priority over LogOut
	Logger *zerolog.Logger
}

func NewContext(config ContextConfig) *Context {
	stdlibCtx := config.ParentStdlibContext
	if stdlibCtx == nil {
		stdlibCtx = context.Background()
	}

	logger := nopLogger
	if config.Logger != nil {
		logger = *config.Logger
	} else if config.LogOut != nil {
		logger = zerolog.New(config.LogOut)
	}

	ctx := &Context{
		Context: stdlibCtx,
		id:      ulid.Make(),
	}
	ctx.logger = logger.With().Str(CONTEXT_ID_LOG_FIELD_NAME, ctx.id.String()).Logger()
	return ctx
}

func (ctx *Context) Id() ulid.ULID {
	return ctx.id
}

func (ctx *Context) Logger() zerolog.Logger {
	return ctx.logger
}

// NewChildLoggerForInternalSource returns the context's logger with an
// additional source field, for logs produced by runtime subsystems.
func (ctx *Context) NewChildLoggerForInternalSource(src string) zerolog.Logger {
	return ctx.logger.With().Str(SOURCE_LOG_FIELD_NAME, src).Logger()
}
