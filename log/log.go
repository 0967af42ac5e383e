// Package log provides the slog loggers and log values used across the module.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/rfc3986/internal/constraints"
	"github.com/ghettovoice/rfc3986/internal/util"
)

// MaxInputLen is the length after which raw inputs logged under the "input" and "reference" keys are cut.
const MaxInputLen = 256

func truncInput(v slog.Value) slog.Value {
	v = v.Resolve()
	if v.Kind() != slog.KindString {
		return v
	}
	return slog.StringValue(util.Ellipsis(v.String(), MaxInputLen))
}

// NewHandler wraps h with the module formatters:
// errors are expanded into groups and long raw inputs are cut.
var NewHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByKey("input", truncInput),
	slogformatter.FormatByKey("reference", truncInput),
	slogformatter.FormatByType(func(e interface {
		error
		Grammar() bool
	}) slog.Value {
		return slog.GroupValue(
			slog.String("type", fmt.Sprintf("%T", e)),
			slog.String("message", e.Error()),
		)
	}),
)

// Def is a default logger writing colored console records to stdout at debug level.
// It is not used by the module itself, pass it to [github.com/ghettovoice/rfc3986/uri.WithLogger] to trace rejected inputs.
var Def = slog.New(NewHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger writing multiline records to stdout at debug level.
// Like [Def], it is meant for callers of [github.com/ghettovoice/rfc3986/uri.WithLogger].
var Dev = slog.New(NewHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
