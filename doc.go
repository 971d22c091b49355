// Package logspec filters log events against a declarative specification
// of per-module verbosity levels, conventionally read from the LOGSPEC
// environment variable. It sits between an application's logging frontend
// and the sink that actually emits output: events whose module and level
// are not covered by the specification are dropped before they reach the
// sink.
//
// A specification is a comma-separated list of directives, optionally
// followed by "/" and a message filter pattern:
//
//	module.path=level
//
// Module paths are matched by prefix, so a directive for "app.db" also
// covers "app.db.pool". The level may be a name (off, error, warn, info,
// debug, trace) or its integer rank (0-5). Both the module and the level
// are optional: a bare level sets the global fallback, and a bare module
// enables that module at full verbosity.
//
// Some examples:
//
//	app                 everything from the app module
//	info                info and below, everywhere
//	app.db=debug        debug logging for app.db
//	error,app=warn      errors globally, warnings for app
//	app=debug/slow      app debug messages containing "slow"
//
// The pattern after "/" is a regular expression tested against the
// rendered message of every event that passes the level gate; there is a
// single filter for all modules. With no specification at all, only
// errors pass.
//
// Malformed directives are reported on stderr and skipped; a bad
// specification never breaks the program, it just falls back to the
// default posture.
//
// The subpackages slogfilter, zapfilter and logrusfilter adapt the engine
// to log/slog handlers, zap cores and logrus hooks respectively.
package logspec
