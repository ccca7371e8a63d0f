package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, line []byte) LogEntry {
	t.Helper()
	var entry LogEntry
	require.NoError(t, json.Unmarshal(line, &entry))
	return entry
}

func TestJSONLoggerWritesEntry(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, InfoLevel)

	log.Info("layout pass complete", LayoutMode("force"), Count(42))

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "layout pass complete", entry.Message)
	assert.Equal(t, "force", entry.Fields["layout_mode"])
	assert.Equal(t, float64(42), entry.Fields["count"])
	assert.NotEmpty(t, entry.Time)
}

func TestJSONLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, WarnLevel)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestJSONLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, InfoLevel)

	child := log.With(Component("engine"))
	child.Info("tick")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "engine", entry.Fields["component"])
}

func TestJSONLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, ErrorLevel)

	log.SetLevel(DebugLevel)
	assert.Equal(t, DebugLevel, log.GetLevel())

	log.Debug("now visible")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("WARNING"))
	assert.Equal(t, InfoLevel, ParseLevel("garbage"))
}

func TestErrorField(t *testing.T) {
	f := Error(errors.New("boom"))
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "boom", f.Value)

	assert.Nil(t, Error(nil).Value)
}

func TestDomainFields(t *testing.T) {
	assert.Equal(t, "node_id", NodeID("n1").Key)
	assert.Equal(t, "a->b", EdgeEndpoints("a", "b").Value)

	v := Visible(10, 4)
	assert.Equal(t, map[string]int{"nodes": 10, "edges": 4}, v.Value)
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, InfoLevel)

	op := StartTimer(log, "cluster pass", Count(3))
	time.Sleep(time.Millisecond)
	op.End()

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "cluster pass", entry.Message)
	assert.Contains(t, entry.Fields, "latency")
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Info("nothing")
	assert.Equal(t, InfoLevel, log.GetLevel())
	assert.Equal(t, log, log.With(Component("x")))
}
