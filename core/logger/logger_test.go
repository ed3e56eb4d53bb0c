package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/choice/core/logger"
)

type ctxKey struct{}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json output with attrs", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "test")),
		)
		log.Info("Test message", logger.Component("test"))

		output := buf.String()
		assert.Contains(t, output, "Test message")
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"service":"test"`)
	})

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("hidden")
		log.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("development logs debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("choose"), logger.WithOutput(&buf))
		log.Debug("debug line")
		assert.Contains(t, buf.String(), "debug line")
		assert.Contains(t, buf.String(), "service=choose")
	})

	t.Run("production is json", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("choose"), logger.WithOutput(&buf))
		log.Debug("hidden")
		log.Info("visible")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"env":"production"`)
	})

	t.Run("context extractors", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithJSONFormatter(),
			logger.WithOutput(&buf),
			logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
				v, ok := ctx.Value(ctxKey{}).(string)
				return logger.Locale(v), ok
			}),
		)
		ctx := context.WithValue(context.Background(), ctxKey{}, "pl")
		log.With("k", "v").InfoContext(ctx, "with locale")
		assert.Contains(t, buf.String(), `"locale":"pl"`)
		assert.Contains(t, buf.String(), `"k":"v"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("nope"))
}
