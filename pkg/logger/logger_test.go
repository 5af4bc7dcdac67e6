package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_KeyValuePairs(t *testing.T) {
	var buf bytes.Buffer
	configure(&buf, zerolog.DebugLevel)

	Info("prediction_served", "user_id", 42, "category", "BIG")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "prediction_served", line["message"])
	assert.Equal(t, float64(42), line["user_id"])
	assert.Equal(t, "BIG", line["category"])
	assert.Equal(t, "info", line["level"])
}

func TestWrite_TrailingError(t *testing.T) {
	var buf bytes.Buffer
	configure(&buf, zerolog.DebugLevel)

	Error("fetch failed", errors.New("boom"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "boom", line["error"])
}

func TestWrite_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	configure(&buf, zerolog.InfoLevel)

	Debug("hidden", "k", "v")
	assert.Empty(t, buf.String())
}
