// Package logger provides slog construction and attribute helpers shared by
// the choice packages and the command line tool.
//
// # Basic Usage
//
//	log := logger.New(
//		logger.WithDevelopment("choose"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Debug("choice resolved",
//		logger.Keyword("other"),
//		logger.Locale("pl"),
//	)
//
// # Context Extractors
//
// Attributes can be pulled from the context of every *Context call:
//
//	log := logger.New(
//		logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//			locale, ok := i18n.LocaleFromContext(ctx)
//			return logger.Locale(locale), ok
//		}),
//	)
//
// # Attribute Helpers
//
// Helpers return the empty slog.Attr for missing values, which slog drops:
//
//	log.Warn("render failed", logger.Error(err), logger.Template("page"))
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
