// Package memoryhandler provides a handler that keeps every log call in
// memory. It is mostly useful in tests that need to assert on what a
// Logger delivered, and for callers that want to inspect log traffic
// without a sink.
package memoryhandler
