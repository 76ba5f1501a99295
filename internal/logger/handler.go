package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler and drops records by tag, package or file.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

func foundInSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, found := set[strings.ToLower(key)]
	return found
}

// rejected applies the allow/deny pair for one dimension. Deny wins.
func rejected(value string, enabled, disabled map[string]struct{}) bool {
	if foundInSet(disabled, value) {
		return true
	}
	return enabled != nil && !foundInSet(enabled, value)
}

// recordSource resolves the package directory and file name a record came from.
func recordSource(r slog.Record) (pkg, file string, ok bool) {
	if r.PC == 0 {
		return "", "", false
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", "", false
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File), true
}

func recordTag(r slog.Record) (tag string, ok bool) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			ok = true
			return false
		}
		return true
	})
	return tag, ok
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	if pkg, file, ok := recordSource(r); ok {
		if rejected(pkg, h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet) {
			h.trace("package %q filtered: %s", pkg, r.Message)
			return nil
		}
		if rejected(file, h.cfg.enabledFilesSet, h.cfg.disabledFilesSet) {
			h.trace("file %q filtered: %s", file, r.Message)
			return nil
		}
	}

	tag, hasTag := recordTag(r)
	switch {
	case hasTag && rejected(tag, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet):
		h.trace("tag %q filtered: %s", tag, r.Message)
		return nil
	case !hasTag && h.cfg.enabledTagsSet != nil:
		// Tag allow-list active and this record is untagged.
		h.trace("untagged record filtered: %s", r.Message)
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

func (h *filteringHandler) trace(format string, args ...interface{}) {
	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] "+format+"\n", args...)
	}
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
