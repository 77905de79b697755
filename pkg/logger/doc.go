// Package logger builds configured slog loggers with context-aware
// attribute injection.
//
// New assembles a slog.Logger from options: output format, level, static
// attributes, and context extractors that pull request-scoped values (such
// as a request id) into every record logged with that context.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "nameforged"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	logger.SetAsDefault(log)
//
// The attr helpers keep attribute keys consistent across the codebase:
//
//	log.Error("generation failed", logger.Error(err), logger.Theme("elf"))
package logger
