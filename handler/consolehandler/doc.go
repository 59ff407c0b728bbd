// Package consolehandler provides a handler for terminal output that
// splits log lines between stdout and stderr by severity.
//
// Emergency, alert, critical and error lines go to stderr; warning,
// notice, info and debug lines go to stdout. Each line is rendered by a
// streamhandler.StreamHandler, so the format is the same "[level] message"
// text line.
package consolehandler
