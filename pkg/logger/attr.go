package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors", or returns an empty Attr.
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

// Error records err under "error". A nil err yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records a form path under "path". The root path is logged as "$".
func Path(p string) slog.Attr {
	if p == "" {
		p = "$"
	}
	return slog.String("path", p)
}

// Kind records a node kind under "kind".
func Kind(k any) slog.Attr {
	return slog.Any("kind", k)
}

// Validator records a validator name under "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// File records a file name under "file".
func File(name string) slog.Attr {
	return slog.String("file", name)
}

// Count records a count under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
