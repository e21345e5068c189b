// Package bfetch wires bdrain to an HTTP client for the common fetch-and-drain case:
// issue a GET, drain the response body through an accumulator, return the content.
//
// It carries the small amount of glue a command line or service needs around the
// core: environment-based configuration, a zap logger and a request builder. The
// bdrain package itself stays free of all three.
package bfetch
