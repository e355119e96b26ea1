package unitvec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogStepThrottled(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)
	ctx := context.Background()

	for range 5 {
		l.LogStep(ctx, 10, 0.1, nil)
	}
	l.LogStep(ctx, 10, -1, errors.New("boom"))
	l.LogStep(ctx, 10, -1, errors.New("boom"))

	recs := records(t, &buf)
	require.Len(t, recs, 3)
	assert.Equal(t, "step completed", recs[0]["msg"])
	assert.Equal(t, "step failed", recs[1]["msg"])
	assert.Equal(t, "boom", recs[1]["error"])
	assert.Equal(t, "step failed", recs[2]["msg"])
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithKernel("gonum").WithShard(0, 64)

	l.LogStats(context.Background(), Stats{Count: 3, MeanSpeed: 1.5, MaxSpeed: 2})

	recs := records(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "gonum", recs[0]["kernel"])
	assert.Equal(t, float64(64), recs[0]["shard_hi"])
	assert.Equal(t, 1.5, recs[0]["mean_speed"])
}

func TestLoggerWithSharesThrottle(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)
	child := l.WithCount(1)

	l.LogStep(context.Background(), 1, 1, nil)
	child.LogStep(context.Background(), 1, 1, nil)

	assert.Len(t, records(t, &buf), 1)
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogStep(context.Background(), 1, 1, errors.New("ignored"))
}
