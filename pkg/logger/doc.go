// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values, such as the request id and the current
// tenant, into every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "greyhound"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			tenant.LoggerExtractor(),
//		),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(r.Context(), "balance served", logger.Tenant(t.Slug))
//
// Extractors run when a record is handled, not when the logger is built, so a
// single logger can be shared by all requests.
//
// Helpers such as Error and Errors return an empty attribute for nil errors,
// which slog drops:
//
//	log.Info("lookup finished", logger.Error(err))
package logger
