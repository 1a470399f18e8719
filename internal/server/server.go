// Package server hosts the contact forwarder over HTTP.
package server

import (
	"context"
	"net"
	"net/http"
	"time"
)

type Server struct {
	HTTP *http.Server
}

func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		HTTP: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Serve() error                        { return s.HTTP.ListenAndServe() }
func (s *Server) ServeListener(ln net.Listener) error { return s.HTTP.Serve(ln) }
func (s *Server) Shutdown(ctx context.Context) error  { return s.HTTP.Shutdown(ctx) }
func (s *Server) Close() error                        { return s.HTTP.Close() }
func (s *Server) Addr() string                        { return s.HTTP.Addr }
