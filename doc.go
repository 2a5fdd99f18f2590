// Package main provides the entry point for the inventory administration
// application. It runs a Fiber web server exposing a REST API over the
// database-backed system settings and their audit trail. Settings are cached
// in process, validated against per-record constraints before persisting,
// and every change is recorded with its actor and old/new values.
package main
