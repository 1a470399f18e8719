// Package profiling serves net/http/pprof for the window build.
package profiling

import (
	"errors"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
)

// Serve listens on addr in the background. The listener's exit error is
// logged and handed to done, when it is not nil.
func Serve(addr string, logger *slog.Logger, done func(error)) {
	if logger == nil {
		logger = slog.Default()
	}
	go func() {
		err := http.ListenAndServe(addr, nil)
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server stopped", "addr", addr, "err", err)
		}
		if done != nil {
			done(err)
		}
	}()
}
