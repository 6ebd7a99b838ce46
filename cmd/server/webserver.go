package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/render"
)

const (
	thumbW = 200
	thumbH = 150
)

// webServer creates the http server with grid download endpoints
// it also initializes websocket endpoint and returns net.Listener accepting websocket connections for irpc
func webServer(ctx context.Context, port int, gp mandel.GridProvider) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, fmt.Sprintf(":%d/ws", port))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           newMux(l, gp),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return l, srv
}

func newMux(l *WebsocketListener, gp mandel.GridProvider) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.HandleFunc("GET /grid.csv", csvHandler(gp))
	mux.HandleFunc("GET /grid.png", pngHandler(gp, false))
	mux.HandleFunc("GET /thumb.png", pngHandler(gp, true))
	return mux
}

func csvHandler(gp mandel.GridProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := gp.GetGrid()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		if err := mandel.WriteCSV(w, g); err != nil {
			log.Printf("grid.csv: %v", err)
		}
	}
}

func pngHandler(gp mandel.GridProvider, thumb bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, err := gp.GetGrid()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		img := render.Image(g)
		if thumb {
			img = render.Thumbnail(img, thumbW, thumbH)
		}
		w.Header().Set("Content-Type", "image/png")
		if err := render.EncodePNG(w, img); err != nil {
			log.Printf("%s: %v", r.URL.Path, err)
		}
	}
}

// websocketHandler handles the http ws endpoint
// if websocket is succesfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: restrict once the server is exposed beyond localhost
		})
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// WebsocketListener implements net.Listener
// it's a wrapper around websocket.Conn
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
