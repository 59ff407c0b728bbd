// Package handler provides the Handler interface and the fan-out
// building blocks shared by every fanlog output.
//
// A Handler receives a level, a message template and a context map, and
// reports failure through its error return. Handlers in this tree:
//
//   - streamhandler writes "[level] message" lines to an io.Writer.
//   - consolehandler splits stream lines between stdout and stderr.
//   - filehandler appends stream lines to a file.
//   - memoryhandler records calls for inspection.
//   - zaphandler, zerologhandler, logrushandler and sloghandler forward
//     calls to the respective logging library.
//
// MultiHandler delivers a call to several handlers in order and stops at
// the first error. Stats counts processed and failed writes for handlers
// that expose it through StatsProvider.
package handler
