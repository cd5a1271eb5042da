// Package preview serves a live-rendered view of a diagram over HTTP.
//
// Connected browsers receive a PNG rendering over a websocket whenever
// the diagram is updated, which makes it easy to watch a diagram while
// editing or animating it.
package preview

import (
	"bytes"
	"image/png"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/arlet/dia"
	"github.com/arlet/dia/internal/logging"
	"github.com/arlet/dia/pkg/render"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// Server renders diagrams and pushes the result to connected clients.
type Server struct {
	ctx *render.Context
	// MaxWidth, when nonzero, scales pushed images down to this width.
	MaxWidth int

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
}

// NewServer creates a preview server rendering with the given context.
func NewServer(ctx *render.Context) *Server {
	return &Server{
		ctx:     ctx,
		clients: make(map[*client]struct{}),
	}
}

// Update re-renders the diagram and broadcasts the PNG bytes to all
// connected clients. The most recent image is kept and sent to clients
// that connect later.
func (s *Server) Update(d dia.Diagram) error {
	var buf bytes.Buffer
	err := render.RenderPNG(s.ctx, d, &buf)
	if err != nil {
		return dia.Wrap(err, "preview render failed")
	}

	data := buf.Bytes()
	if s.MaxWidth > 0 {
		data, err = s.shrink(data)
		if err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.last = data
	for c := range s.clients {
		c.send(data)
	}
	s.mu.Unlock()

	return nil
}

func (s *Server) shrink(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, dia.Wrap(err, "failed to decode preview image")
	}

	var buf bytes.Buffer
	err = png.Encode(&buf, render.Thumbnail(img, s.MaxWidth))
	if err != nil {
		return nil, dia.Wrap(err, "failed to encode thumbnail")
	}
	return buf.Bytes(), nil
}

// Handler returns the HTTP handler serving the preview page on "/"
// and the websocket endpoint on "/ws".
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.servePage)
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexPage))
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warning("preview: websocket upgrade failed: %v", err)
		return
	}

	c := &client{conn: conn, out: make(chan []byte, 4)}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	last := s.last
	s.mu.Unlock()

	logging.Info("preview: client connected from %v", r.RemoteAddr)
	if last != nil {
		c.send(last)
	}

	go c.writeLoop(func() { s.drop(c) })
	go c.readLoop()
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()
	c.conn.Close()
}

type client struct {
	conn *websocket.Conn
	out  chan []byte
}

// send queues data for the client, dropping the frame if the client
// cannot keep up.
func (c *client) send(data []byte) {
	select {
	case c.out <- data:
	default:
		logging.Debug("preview: client too slow, frame dropped")
	}
}

func (c *client) writeLoop(done func()) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	defer done()

	for {
		select {
		case data := <-c.out:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.conn.WriteMessage(websocket.BinaryMessage, data)
			if err != nil {
				logging.Debug("preview: write failed: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			if err != nil {
				return
			}
		}
	}
}

// readLoop discards incoming messages; it exists to notice when the
// peer closes the connection.
func (c *client) readLoop() {
	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>dia preview</title></head>
<body style="margin:0;background:#333">
<img id="view" style="display:block;margin:auto"/>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.binaryType = "blob";
ws.onmessage = function(ev) {
    document.getElementById("view").src = URL.createObjectURL(ev.data);
};
</script>
</body>
</html>
`
