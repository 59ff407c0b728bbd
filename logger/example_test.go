package logger_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipp01105/fanlog/handler/memoryhandler"
	"github.com/philipp01105/fanlog/handler/streamhandler"
	"github.com/philipp01105/fanlog/logger"
)

// Create a Logger with the Builder and log with placeholders.
func ExampleNewBuilder() {
	log := logger.NewBuilder().
		AddHandler(streamhandler.New(os.Stdout)).
		Build()

	_ = log.Info("user {user} logged in", logger.Context{"user": "alice"})
	_ = log.Warning("disk {disk} at {pct}%", logger.Context{"disk": "sda1", "pct": 91})
	// Output:
	// [info] user alice logged in
	// [warning] disk sda1 at 91%
}

// A failing handler stops delivery and its error reaches the caller.
func ExampleLogger_Log() {
	audit := memoryhandler.New()
	audit.FailWith(errors.New("audit store offline"))

	log := logger.New(audit, streamhandler.New(os.Stdout))
	err := log.Log(logger.CriticalLevel, "payment failed", nil)
	fmt.Println(err)
	// Output:
	// audit store offline
}

// Loggers are handlers, so they can be nested.
func ExampleNew() {
	inner := logger.New(streamhandler.New(os.Stdout))
	outer := logger.New(inner, inner)

	_ = outer.Notice("twice")
	// Output:
	// [notice] twice
	// [notice] twice
}
