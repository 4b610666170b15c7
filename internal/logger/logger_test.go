package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lenscraft-server/internal/config"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.Log{Level: "debug", Format: "json"}, &buf)

	l.Info("class approved", "classId", "c-1")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "class approved", line["msg"])
	assert.Equal(t, "c-1", line["classId"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l := New(config.Log{Level: "loud", Format: "text"}, &bytes.Buffer{})
	assert.Equal(t, charmlog.InfoLevel, l.GetLevel())
}
