package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wordladder/internal/logging"
)

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, logging.LevelForVerbosity(0))
	assert.Equal(t, zerolog.InfoLevel, logging.LevelForVerbosity(1))
	assert.Equal(t, zerolog.DebugLevel, logging.LevelForVerbosity(2))
	assert.Equal(t, zerolog.TraceLevel, logging.LevelForVerbosity(3))
	assert.Equal(t, zerolog.TraceLevel, logging.LevelForVerbosity(9))
	assert.Equal(t, zerolog.WarnLevel, logging.LevelForVerbosity(-1))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logging.ParseLevel(" DEBUG "))
	assert.Equal(t, zerolog.ErrorLevel, logging.ParseLevel("error"))
	assert.Equal(t, zerolog.WarnLevel, logging.ParseLevel("loud"))
	assert.Equal(t, zerolog.WarnLevel, logging.ParseLevel(""))
}

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Setup(zerolog.InfoLevel, logging.FormatJSON, &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("word", "cat").Msg("shown")
	searchLogger := logging.Logger("search")
	searchLogger.Warn().Msg("tagged")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"word":"cat"`)
	assert.Contains(t, out, `"component":"search"`)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestSetup_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Setup(zerolog.DebugLevel, logging.FormatConsole, &buf)

	done := logging.LogOperationStart(logger, "load")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.NotContains(t, out, `{"level"`)
}
