package http

import (
	"os"
	"os/signal"
	"syscall"
)

// GracefulShutdown blocks until the process receives an interrupt or
// termination signal and returns it.
func GracefulShutdown() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}
