// Package actions adapts log/slog to GitHub Actions workflow commands.
package actions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// Enabled reports whether the process runs inside a GitHub Actions job.
func Enabled(getenv func(string) string) bool {
	return getenv("GITHUB_ACTIONS") == "true"
}

// Handler is a slog.Handler that writes each record as a workflow command:
// debug records become ::debug:: (shown only with step debugging enabled),
// warnings ::warning:: and errors ::error::. Info records are plain lines.
type Handler struct {
	action *githubactions.Action
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a Handler writing through a. A nil level means debug,
// leaving filtering to the runner.
func NewHandler(a *githubactions.Action, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelDebug
	}
	return &Handler{action: a, level: level}
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	msg := b.String()

	switch {
	case r.Level >= slog.LevelError:
		h.action.Errorf("%s", msg)
	case r.Level >= slog.LevelWarn:
		h.action.Warningf("%s", msg)
	case r.Level >= slog.LevelInfo:
		h.action.Infof("%s", msg)
	default:
		h.action.Debugf("%s", msg)
	}
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := strings.Join(h.groups, ".")
	next := h.clone()
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		next.attrs = append(next.attrs, a)
	}
	return next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.groups = append(next.groups, name)
	return next
}

func (h *Handler) clone() *Handler {
	return &Handler{
		action: h.action,
		level:  h.level,
		attrs:  append([]slog.Attr(nil), h.attrs...),
		groups: append([]string(nil), h.groups...),
	}
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key == "" {
			key = prefix
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Any())
}
