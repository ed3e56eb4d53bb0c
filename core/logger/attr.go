package logger

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Attribute helpers return the empty Attr for missing values, so calls like
// log.Info("msg", logger.Error(err)) need no nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups non-nil errors under "errors", keyed by their index.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an "error" attribute, or the empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Choice Resolution
// ============================================================================

// Keyword creates an attribute for a resolved choice keyword. Empty keywords
// are logged too, since "" is a valid resolution result.
func Keyword(keyword string) slog.Attr {
	return slog.String("keyword", keyword)
}

// Locale creates an attribute for a locale identifier.
func Locale(locale string) slog.Attr {
	if locale == "" {
		return slog.Attr{}
	}
	return slog.String("locale", locale)
}

// Labels creates an attribute for a matcher's label set.
func Labels(labels []string) slog.Attr {
	if len(labels) == 0 {
		return slog.Attr{}
	}
	return slog.String("labels", strings.Join(labels, " "))
}

// RuleName creates an attribute for a keyword rule name.
func RuleName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("rule", name)
}

// Template creates an attribute for a template name.
func Template(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("template", name)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Path creates an attribute for URL or file paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Elapsed logs the duration since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Key creates a generic key-value attribute, or the empty Attr for nil.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
