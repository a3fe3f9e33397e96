package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vitetag/internal/adapters/logger"
	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T, buf *bytes.Buffer) *logger.Logger {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	l := logger.New()
	l.SetOutput(buf)
	return l
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(l *logger.Logger)
	}{
		{
			name: "info",
			log:  func(l *logger.Logger) { l.Info("dev server started at http://localhost:5173") },
		},
		{
			name: "warn",
			log:  func(l *logger.Logger) { l.Warn("ignoring unknown field \"ssr\" in vite.yaml") },
		},
		{
			name: "error_chain",
			log: func(l *logger.Logger) {
				l.Error(zerr.With(
					zerr.Wrap(domain.ErrChunkNotFound, "unable to resolve entry point"),
					"entry", "resources/js/missing.js",
				))
			},
		},
		{
			name: "error_standard",
			log:  func(l *logger.Logger) { l.Error(errors.New("permission denied")) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(newLogger(t, &buf))

			g := goldie.New(t)
			g.Assert(t, "logger_"+tt.name, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	newLogger(t, &buf).Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(t, &buf)
	l.SetJSON(true)

	l.Info("resolved")
	l.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "resolved", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "operation failed", failure["msg"])
	assert.Equal(t, "boom", failure["error"])
}

func TestLogger_SetJSON_KeepsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(t, &buf)

	l.SetJSON(true)
	l.SetJSON(false)
	l.Info("back to pretty")

	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutputNil(t *testing.T) {
	l := logger.New()
	assert.NotPanics(t, func() { l.SetOutput(nil) })
}
