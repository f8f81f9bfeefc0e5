// Package logger provides structured logging for authkit components
// using zerolog.
//
// Logging is strictly opt-in: the wire layer never logs as a side effect of
// a call. Hosts that want call logging attach it through httpwire middleware
// with a logger built here.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("authkit")
//	log.Info("discovery document fetched", logger.Fields("host", host))
package logger
