// Package sloghandler connects fanlog and log/slog in both directions.
//
// SlogHandler is a fanlog handler that forwards every log call to a
// slog.Handler, so a fanlog Logger can feed the standard library's
// structured output. Adapter goes the other way: it implements
// slog.Handler over any fanlog handler, letting code written against
// slog log through fanlog handlers.
//
// slog has four named levels. The remaining fanlog severities use the
// offsets LevelNotice, LevelCritical, LevelAlert and LevelEmergency, and
// CoreLevel maps any slog level back to the closest severity.
package sloghandler
