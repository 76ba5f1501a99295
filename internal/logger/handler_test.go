package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(cfg Config) (*slog.Logger, *bytes.Buffer) {
	var out bytes.Buffer
	cfg.process()
	base := slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(newFilteringHandler(base, &cfg)), &out
}

func TestFilteringHandler_PassesWithoutFilters(t *testing.T) {
	log, out := newTestLogger(NewConfig())
	log.Info("hello")
	assert.Contains(t, out.String(), "msg=hello")
}

func TestFilteringHandler_DisabledTagDropsRecord(t *testing.T) {
	log, out := newTestLogger(Config{DisabledTags: []string{"Draw"}})
	log.Info("painting", tagKey, "draw")
	log.Info("other", tagKey, "mode")
	assert.NotContains(t, out.String(), "painting")
	assert.Contains(t, out.String(), "other")
}

func TestFilteringHandler_EnabledTagsDropUntagged(t *testing.T) {
	log, out := newTestLogger(Config{EnabledTags: []string{"mode"}})
	log.Info("untagged")
	log.Info("chord armed", tagKey, "mode")
	assert.NotContains(t, out.String(), "untagged")
	assert.Contains(t, out.String(), "chord armed")
}

func TestFilteringHandler_PackageAndFileFilters(t *testing.T) {
	log, out := newTestLogger(Config{DisabledPackages: []string{"logger"}})
	log.Info("from this package")
	assert.Empty(t, out.String())

	log, out = newTestLogger(Config{EnabledFiles: []string{"other.go"}})
	log.Info("from this file")
	assert.Empty(t, out.String())

	log, out = newTestLogger(Config{EnabledFiles: []string{"handler_test.go"}})
	log.Info("allowed file")
	assert.Contains(t, out.String(), "allowed file")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"err":     slog.LevelError,
	}
	for name, want := range cases {
		got, ok := ParseLevel(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	got, ok := ParseLevel("loud")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestWrappersDiscardBeforeInit(t *testing.T) {
	// Must not panic when nothing initialised the package.
	Debugf("value %d", 1)
	DebugTagf("mode", "value %d", 2)
	assert.NotNil(t, Get())
}
