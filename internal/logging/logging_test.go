package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	// Invalid levels fall back to info instead of failing.
	fallback := NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, fallback)
}

func TestLogrusAdapterChaining(t *testing.T) {
	logger := NewLogrusAdapter("info", "text")

	chained := logger.
		WithField("page", 3).
		WithError(errors.New("boom")).
		WithFields(Field{Key: "file_path", Value: "in.pdf"})
	require.NotNil(t, chained)

	// Chained loggers are independent of the parent.
	assert.NotSame(t, logger, chained)
}

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("processing", Field{Key: "page", Value: 1})
	mock.Warn("slow page")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0].Level)
	assert.Equal(t, "processing", entries[0].Message)
	assert.Equal(t, 1, entries[0].Fields["page"])
	assert.Equal(t, "warn", entries[1].Level)

	assert.True(t, mock.HasMessage("slow page"))
	assert.False(t, mock.HasMessage("never logged"))
}

func TestMockLoggerDerivedLoggersShareEntries(t *testing.T) {
	mock := NewMockLogger()
	boom := errors.New("boom")

	mock.WithError(boom).WithField("page", 2).Error("page failed")

	entries := mock.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0].Level)
	assert.Equal(t, boom, entries[0].Error)
	assert.Equal(t, 2, entries[0].Fields["page"])
}

func TestMockLoggerDerivedFieldsDoNotLeakBack(t *testing.T) {
	mock := NewMockLogger()

	derived := mock.WithField("region", "table_0")
	derived.Info("derived message")
	mock.Info("plain message")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "table_0", entries[0].Fields["region"])
	_, leaked := entries[1].Fields["region"]
	assert.False(t, leaked)
}
