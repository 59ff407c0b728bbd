// Package core defines the shared types used across fanlog.
//
// It provides the Level type with its eight fixed severities, the Context
// map that carries per-call placeholder values, and the helpers that turn
// an error stored under the reserved "error" key into a name and a list of
// trace frames.
//
// Levels have no numeric ranking. fanlog never filters on severity, so
// identity is the only operation a Level needs.
//
// StringValue converts context values with strconv for the common scalar
// types and falls back to fmt for everything else.
package core
