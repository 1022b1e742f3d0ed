// Package logger provides structured logging on top of zerolog.
//
// A Logger carries a service name and optional component/field context.
// Loggers are created from Config, from the environment, or taken from the
// package-level global logger:
//
//	log := logger.New(&logger.Config{Level: "debug", Format: "json"}, "fetchctl")
//	log.WithComponent("fetch").Debug("request sent", logger.Fields(
//	    logger.FieldMethod, "GET",
//	    logger.FieldAddress, "/items",
//	))
package logger
