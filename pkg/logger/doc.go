// Package logger builds *slog.Logger values for surrealschema and its callers
// and provides attribute helpers with consistent key names.
//
// New creates a logger from Option functions:
//
//   • WithFormat / WithTextFormatter / WithJSONFormatter – output format
//   • WithLevel – minimum level
//   • WithAttr – static attributes added to every record
//   • WithContextExtractors / WithContextValue – attributes read from the
//     context.Context passed to the *Context logging methods
//   • WithDevelopment – text output at debug level
//
// The handler returned by slog.NewTextHandler or slog.NewJSONHandler is
// wrapped in LogHandlerDecorator, which runs the registered extractors on
// every record. Decorate adds extractors to an existing logger; the catalog in
// surrealschema uses it to stamp the localization language.
//
// Library code must not log unless asked to, so types that accept a logger
// default to Discard.
//
// # Usage
//
//	import "github.com/dmitrymomot/surrealschema/pkg/logger"
//
//	log := logger.New(
//	    logger.WithDevelopment("billing"),
//	    logger.WithContextValue("lang", langKey{}),
//	)
//	catalog, err := surrealschema.NewCatalog(surrealschema.WithLogger(log))
//
// Attribute helpers such as Error, Path, Table and TranslationKey live in
// attr.go. Error and Errors return an empty attribute for nil errors, so they
// can be passed unconditionally.
package logger
