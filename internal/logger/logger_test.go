package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// restoreGlobalLevel возвращает глобальный уровень после теста.
func restoreGlobalLevel(t *testing.T) {
	t.Helper()

	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })
}

func TestNewWriterLogger_EntryFields(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	l := NewWriterLogger("go-course-auth", &buf)

	l.Info().Str("email", "a@x.io").Msg("user created")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "go-course-auth", entry["role"])
	assert.Equal(t, "user created", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewWriterLogger_EntryFields")
}

func TestNewLogger_StartsAtDebug(t *testing.T) {
	restoreGlobalLevel(t)
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	require.NotNil(t, NewLogger("startup"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestSetLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
		wantErr   bool
	}{
		{name: "warn", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "upper case is rejected", level: "LOUD", wantLevel: zerolog.DebugLevel, wantErr: true},
		{name: "empty keeps current", level: "", wantLevel: zerolog.DebugLevel},
		{name: "disabled", level: "disabled", wantLevel: zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreGlobalLevel(t)
			zerolog.SetGlobalLevel(zerolog.DebugLevel)

			err := SetLevel(tt.level)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.level)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetLevel_FiltersEntries(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	l := NewWriterLogger("filter", &buf)
	require.NoError(t, SetLevel("warn"))

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Equal(t, "shown", decodeEntry(t, &buf)["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	restoreGlobalLevel(t)

	var buf bytes.Buffer
	parent := NewWriterLogger("parent", &buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	// поля ребёнка не протекают в родителя
	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger is returned", func(t *testing.T) {
		restoreGlobalLevel(t)

		var buf bytes.Buffer
		l := NewWriterLogger("ctx-role", &buf)
		l.Logger = l.With().Str("trace_id", "abc").Logger()

		FromContext(l.WithContext(context.Background())).Info().Msg("round trip")

		entry := decodeEntry(t, &buf)
		assert.Equal(t, "ctx-role", entry["role"])
		assert.Equal(t, "abc", entry["trace_id"])
	})

	t.Run("empty context never yields nil", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		assert.NotPanics(t, func() { l.Info().Msg("nowhere") })
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}
