package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/internal/config"
)

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(config.Log{Level: "warn"}, &buf)
	log.Info("hidden")
	log.Warn("sorted", "n", 5)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Regexp(t, `\[WARN\]\s+algokit: sorted: n=5\s*$`, buf.String())
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	New(config.Log{Level: "debug", JSON: true}, &buf).Debug("transpose", "rows", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "transpose", rec["@message"])
	assert.Equal(t, "algokit", rec["@module"])
	assert.Equal(t, "debug", rec["@level"])
	assert.EqualValues(t, 2, rec["rows"])
}

func TestUnknownLevelFallsBack(t *testing.T) {
	opts := makeLoggerOptions(config.Log{Level: "chatty"}, &bytes.Buffer{})
	require.Equal(t, hclog.Info, opts.Level)
}
