package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureSink(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetSink(&buf)
	t.Cleanup(func() {
		SetLevel(Info)
		SetSink(os.Stderr)
	})
	return &buf
}

func TestLoggerOutputCarriesModule(t *testing.T) {
	buf := captureSink(t)

	New("harness").Infof("presented frame %d", 7)

	out := buf.String()
	assert.Contains(t, out, "[harness]")
	assert.Contains(t, out, "presented frame 7")
}

func TestSetLevelFilters(t *testing.T) {
	buf := captureSink(t)
	SetLevel(Warning)

	logger := New("harness")
	logger.Info("below threshold")
	assert.Empty(t, buf.String())

	logger.Warning("at threshold")
	assert.Contains(t, buf.String(), "at threshold")
}

func TestSetSinkKeepsLevel(t *testing.T) {
	captureSink(t)
	SetLevel(Error)

	var buf bytes.Buffer
	SetSink(&buf)
	New("harness").Warning("still filtered")
	assert.Empty(t, buf.String())
}
