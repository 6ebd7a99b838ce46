package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marben/irpc"
	mandel "github.com/marben/mandelbench"
)

const (
	httpPort = 8080
	tcpAddr  = ":8081"
)

// main is the entry point for the grid server.
// It computes the default grid once and serves it over http, and over irpc on websocket and tcp.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

// newIrpcServer provides mandel.GridProvider over network, backed by gp
func newIrpcServer(gp mandel.GridProvider) *irpc.Server {
	return irpc.NewServer(
		irpc.WithServices(mandel.NewGridProviderIrpcService(gp)),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			log.Printf("got connection from: %s", ep.RemoteAddr())
		}),
	)
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// gridCache backs every endpoint, so the grid is computed exactly once
	grid := newGridCache(mandel.DefaultParams())
	if _, err := grid.GetGrid(); err != nil {
		return fmt.Errorf("computing grid: %w", err)
	}

	irpcServer := newIrpcServer(grid)

	// TCP
	log.Printf("tcp listening on %s", tcpAddr)
	tcpListener, err := net.Listen("tcp", tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, httpPort, grid)

	errCh := make(chan error, 3)
	go func() {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("httpServer: %w", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("server.Serve tcp: %w", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("server.Serve ws: %w", err)
		}
	}()

	log.Printf("grid server waiting for tcp and websocket connections")
	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
		log.Printf("shutting down")
	}

	// closes both listeners and every connected endpoint
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpcServer.Close: %v", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.Join(runErr, httpServer.Shutdown(shutdownCtx))
}
