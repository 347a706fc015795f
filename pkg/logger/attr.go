package logger

import (
	"log/slog"
	"strconv"
	"strings"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records an issue path under the key "path" joined with dots.
// An empty path is rendered as "$" so root level issues remain visible.
func Path(segments []string) slog.Attr {
	if len(segments) == 0 {
		return slog.String("path", "$")
	}
	return slog.String("path", strings.Join(segments, "."))
}

// Table records a table name under the key "table".
func Table(name string) slog.Attr {
	return slog.String("table", name)
}

// Kind records a value kind under the key "kind".
func Kind(kind any) slog.Attr {
	return slog.Any("kind", kind)
}

// Lang records a language code under the key "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// TranslationKey records a message key under the key "translation_key".
func TranslationKey(key string) slog.Attr {
	return slog.String("translation_key", key)
}

// IssueCount records the number of validation issues under the key "issues".
func IssueCount(n int) slog.Attr {
	return slog.Int("issues", n)
}
