// Package logmsg builds structured log messages from either plain text or an error.
package logmsg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
)

const unknownMessage = "unknown"

type (
	// Message is a log record that is not yet bound to a logger.
	Message struct {
		Category string
		Level    slog.Level
		Text     string
		Data     any
		// Stack is set when the message was built from an error carrying a stack trace.
		Stack string
	}

	stackTracer interface {
		StackTrace() errors.StackTrace
	}
)

// New builds a Message from raw, which is expected to be a string or an error.
// Any other value is formatted with %v; nil becomes "unknown".
func New(raw any, category string, level slog.Level, data any) Message {
	switch v := raw.(type) {
	case error:
		return fromError(v, category, level, data)
	case string:
		return fromString(v, category, level, data)
	case nil:
		return fromString(unknownMessage, category, level, data)
	default:
		return fromString(fmt.Sprint(v), category, level, data)
	}
}

func fromError(err error, category string, level slog.Level, data any) Message {
	m := Message{
		Category: category,
		Level:    level,
		Text:     err.Error(),
		Data:     data,
	}

	var st stackTracer
	if errors.As(err, &st) {
		m.Stack = fmt.Sprintf("%+v", st.StackTrace())
	}

	return m
}

func fromString(text string, category string, level slog.Level, data any) Message {
	if text == "" {
		text = unknownMessage
	}

	return Message{
		Category: category,
		Level:    level,
		Text:     text,
		Data:     data,
	}
}

func (m Message) Attrs() []slog.Attr {
	attrs := []slog.Attr{slog.String("category", m.Category)}
	if m.Data != nil {
		attrs = append(attrs, slog.Any("data", m.Data))
	}
	if m.Stack != "" {
		attrs = append(attrs, slog.String("stack", m.Stack))
	}
	return attrs
}

// Log writes the message through logger, or slog.Default when logger is nil.
func (m Message) Log(ctx context.Context, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.LogAttrs(ctx, m.Level, m.Text, m.Attrs()...)
}
