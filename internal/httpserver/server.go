// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package httpserver runs a named HTTP server bound to a context.
package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
)

// Server is an HTTP server with a name used in its logs.
type Server struct {
	name       string
	address    string
	addressSet chan struct{}
	handler    http.Handler
	logger     Logger
	optional   optionalSettings
}

// New creates a server listening on address once run.
// An address with port 0 is assigned a free port, see GetAddress.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	var optional optionalSettings
	for _, option := range options {
		option(&optional)
	}

	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   optional,
	}
}

// GetAddress blocks until the server is listening and returns its address.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	return s.address
}

// Run listens and serves until the context is canceled. The ready channel
// is closed once the server listens, and the exit error, nil on a
// graceful shutdown, is sent on done.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	settings := s.optional.withDefaults()
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: settings.readHeaderTimeout,
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		done <- err
		return
	}
	s.address = listener.Addr().String()
	close(s.addressSet)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		s.logger.Warn(s.name + " http server shutting down: " + ctx.Err().Error())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(s.name + " http server failed shutting down within " +
				settings.shutdownTimeout.String() + ": " + err.Error())
		}
	}()

	close(ready)
	s.logger.Info(s.name + " http server listening on " + s.address)

	err = server.Serve(listener)
	if !errors.Is(err, http.ErrServerClosed) {
		done <- err
		return
	}
	<-shutdownDone
	done <- nil
}
