package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	ts := time.Date(2023, time.January, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "get_list_title-20230102150405.log", FileName("get_list_title", ts))
}

func TestOpenWritesToBothSinks(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2024, time.March, 9, 8, 7, 6, 0, time.UTC)
	var stdout bytes.Buffer

	logger, f, err := Open(dir, "get_list_title", ts, &stdout, log.InfoLevel)
	require.NoError(t, err)

	logger.Info("Title: Organic Chemistry")
	logger.Debug("hidden at info level")
	require.NoError(t, f.Close())

	content, err := os.ReadFile(filepath.Join(dir, "get_list_title-20240309080706.log"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "Title: Organic Chemistry")
	assert.Contains(t, stdout.String(), "Title: Organic Chemistry")
	assert.NotContains(t, stdout.String(), "hidden at info level")
}

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	var logger Logger = New(&buf, log.DebugLevel)

	logger.Debug("payload", "id", "abc123")
	assert.Contains(t, buf.String(), "payload")
	assert.Contains(t, buf.String(), "abc123")
}
