package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_Log(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, time.UTC)

	l.Log(Fields{"event": "db_migration_step", "status": "success"})
	l.Log(Fields{"event": "db_migration_failed", "status": "error"})
	l.Log(Fields{"event": "custom", "level": "debug"})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "debug", lines[2]["level"])
	for _, line := range lines {
		ts, ok := line["ts"].(string)
		require.True(t, ok)
		_, err := time.Parse(time.RFC3339Nano, ts)
		assert.NoError(t, err)
	}
}

func TestLogger_InfoAndError(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil)

	fields := Fields{"component": "api"}
	l.Info("server_starting", fields)
	l.Error("server_failed", errors.New("boom"), fields)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "server_starting", lines[0]["msg"])
	assert.Equal(t, "api", lines[0]["component"])
	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
	// caller's map is not mutated
	assert.Len(t, fields, 1)
}
