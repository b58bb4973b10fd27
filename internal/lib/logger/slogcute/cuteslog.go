package slogcute

import (
	"context"
	"encoding/json"
	"io"
	stdLog "log"
	"log/slog"
	"slices"

	"github.com/fatih/color"
)

type CuteHandlerOptions struct {
	SlogOptions *slog.HandlerOptions
}

// CuteHandler prints one colored line per record followed by its attributes as
// indented JSON. It is meant for local development only.
type CuteHandler struct {
	logger *stdLog.Logger
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewCuteHandler creates a new CuteHandler with the given options.
func (opts CuteHandlerOptions) NewCuteHandler(out io.Writer) *CuteHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts.SlogOptions != nil && opts.SlogOptions.Level != nil {
		level = opts.SlogOptions.Level
	}

	return &CuteHandler{
		logger: stdLog.New(out, "", 0),
		level:  level,
	}
}

func (handler *CuteHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

// Handle formats and outputs the log record in a cute way.
func (handler *CuteHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch {
	case r.Level >= slog.LevelError:
		level = color.RedString(level)
	case r.Level >= slog.LevelWarn:
		level = color.YellowString(level)
	case r.Level >= slog.LevelInfo:
		level = color.BlueString(level)
	default:
		level = color.MagentaString(level)
	}

	fields := make(map[string]any, len(handler.attrs)+r.NumAttrs())

	for _, a := range handler.attrs {
		addAttr(fields, a)
	}

	recordFields := fields
	for _, g := range handler.groups {
		recordFields = subMap(recordFields, g)
	}

	r.Attrs(func(a slog.Attr) bool {
		addAttr(recordFields, a)
		return true
	})

	var b []byte
	var err error

	if len(fields) > 0 {
		b, err = json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return err
		}
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := color.CyanString(r.Message)

	handler.logger.Println(
		timeStr,
		level,
		msg,
		color.WhiteString(string(b)),
	)

	return nil
}

func addAttr(fields map[string]any, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		group := a.Value.Group()
		if len(group) == 0 {
			return
		}

		target := fields
		if a.Key != "" {
			target = subMap(fields, a.Key)
		}
		for _, ga := range group {
			addAttr(target, ga)
		}
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			fields[a.Key] = err.Error()
			return
		}
		fields[a.Key] = a.Value.Any()
	default:
		fields[a.Key] = a.Value.Any()
	}
}

// WithAttrs returns a new CuteHandler with the given attributes added.
func (handler *CuteHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return handler
	}

	h := handler.clone()
	if len(h.groups) == 0 {
		h.attrs = append(h.attrs, attrs...)
		return h
	}

	// Attributes added inside a group are nested under it.
	nested := slog.Group(h.groups[len(h.groups)-1], anySlice(attrs)...)
	for i := len(h.groups) - 2; i >= 0; i-- {
		nested = slog.Group(h.groups[i], nested)
	}
	h.attrs = append(h.attrs, nested)

	return h
}

// WithGroup returns a new CuteHandler that nests subsequent attributes under name.
func (handler *CuteHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}

	h := handler.clone()
	h.groups = append(h.groups, name)

	return h
}

func (handler *CuteHandler) clone() *CuteHandler {
	return &CuteHandler{
		logger: handler.logger,
		level:  handler.level,
		attrs:  slices.Clip(handler.attrs),
		groups: slices.Clip(handler.groups),
	}
}

func subMap(fields map[string]any, key string) map[string]any {
	if m, ok := fields[key].(map[string]any); ok {
		return m
	}

	m := make(map[string]any)
	fields[key] = m

	return m
}

func anySlice(attrs []slog.Attr) []any {
	out := make([]any, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, a)
	}

	return out
}
