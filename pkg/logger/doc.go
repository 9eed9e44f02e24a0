// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent keys.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithContextValue("command", commandKey{}),
//	)
//	log.DebugContext(ctx, "compiled node", logger.Path("users[0].email"), logger.Kind(formtree.KindLeaf))
//
// New writes text records to stderr at info level unless told otherwise.
// ParseLevel and ParseFormat convert configuration strings. Discard returns
// a logger for library code that was not given one.
//
// Attribute helpers such as Error return an empty Attr for nil input, so
// callers can log without a nil check:
//
//	log.Warn("definition skipped", logger.Error(err))
package logger
