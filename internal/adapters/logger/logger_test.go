package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rodata/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Golden(t *testing.T) {
	tests := []struct {
		name string
		log  func(lg *logger.Logger)
	}{
		{"info_attrs", func(lg *logger.Logger) { lg.Info("build finished", "steps", 3, "cached", 1) }},
		{"info_color_hint", func(lg *logger.Logger) { lg.Info("AS $S/assets/logo.bin", logger.ColorKey, "light-green") }},
		{"warn_basic", func(lg *logger.Logger) { lg.Warn("unit enables no known architecture", "unit", "assets") }},
		{"debug_filtered", func(lg *logger.Logger) { lg.Debug("hashing inputs") }},
		{"debug_verbose", func(lg *logger.Logger) {
			lg.SetVerbose(true)
			lg.Debug("hashing inputs", "step", "assets:$S/logo.bin")
		}},
		{"error_chain", func(lg *logger.Logger) {
			base := zerr.New("explicit -I flags are not allowed in YASM_FLAGS")
			err := zerr.With(zerr.Wrap(base, "invalid YASM_FLAGS"), "flag", "-Ifoo")
			err = zerr.With(zerr.Wrap(err, "failed to plan build"), "unit", "assets")
			lg.Error(err)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("step completed", "step", "assets:logo.bin")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "step completed", rec["msg"])
	assert.Equal(t, "assets:logo.bin", rec["step"])

	buf.Reset()
	lg.Error(zerr.With(zerr.New("tool invocation failed"), "exit_code", 2))

	rec = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Contains(t, rec, "error")
}

func TestLogger_PlainDisablesColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	lg.SetColor(false)

	lg.Warn("careful")
	assert.Equal(t, "! careful\n", buf.String())
}
