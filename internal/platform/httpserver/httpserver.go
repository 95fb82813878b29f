// Package httpserver builds an HTTP server with sane defaults for this project.
package httpserver

import (
	"net/http"
	"time"
)

// New returns a server with timeouts tuned for an API that accepts multipart
// image uploads: generous write deadline, strict header deadline.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
