// cliclient is a CLI client for the grid server.
// It connects over websocket, requests the computed grid through irpc, prints its iteration sum and saves it as a PNG file.

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"
	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/render"
)

const (
	serverURL = "ws://localhost:8080/ws"
	filename  = "mandel.png"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(serverURL, filename, os.Stdout); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the grid server at url, requests the computed grid, and saves it as a PNG file named out.
func run(url, out string, stdout io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Step 1: Connect to grid server
	log.Printf("Connecting to grid server at %s...", url)
	ws, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	ep := irpc.NewEndpoint(websocket.NetConn(ctx, ws, websocket.MessageBinary))
	defer ep.Close()

	// Step 2: Create a client for the GridProvider interface
	client, err := mandel.NewGridProviderIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("failed to create GridProvider client: %w", err)
	}

	// Step 3: Request the grid from the server
	log.Printf("Requesting grid from server...")
	grid, err := client.GetGrid()
	if err != nil {
		return fmt.Errorf("client.GetGrid: %w", err)
	}
	fmt.Fprintf(stdout, "Result: %d\n", grid.Sum())

	// Step 4: Save the rendered image to a PNG file
	log.Printf("Saving rendered image to %q...", out)
	if err := savePNG(out, grid); err != nil {
		return err
	}

	log.Printf("Rendered image saved to %q", out)
	return nil
}

func savePNG(path string, grid *mandel.Grid) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()

	return render.EncodePNG(f, render.Image(grid))
}
