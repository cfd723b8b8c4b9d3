package gameserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Nokkasiili/minigolf-server/internal/constants"
)

// RunWebSocket serves the same protocol over a websocket endpoint for
// clients that cannot open a raw TCP socket. Each message is treated as a
// chunk of the byte stream; outbound packets go out one message each.
func (s *Server) RunWebSocket(ctx context.Context) error {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  constants.ReadChunkSize,
		WriteBufferSize: constants.ReadChunkSize,
		CheckOrigin:     func(*http.Request) bool { return true },
	}

	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.WebSocket.Path, func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		s.handleConnection(ctx, &wsConn{ws: ws})
	})

	addr := fmt.Sprintf("%s:%d", s.cfg.WebSocket.BindAddress, s.cfg.WebSocket.Port)
	httpSrv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		httpSrv.Close()
	}()

	slog.Info("websocket bridge listening", "address", addr, "path", s.cfg.WebSocket.Path)

	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving %s: %w", addr, err)
	}
	return nil
}

// wsConn adapts a websocket to net.Conn so the rest of the connection
// pipeline does not care which transport a client came in on.
type wsConn struct {
	ws      *websocket.Conn
	pending io.Reader
}

func (c *wsConn) Read(p []byte) (int, error) {
	for {
		if c.pending == nil {
			kind, r, err := c.ws.NextReader()
			if err != nil {
				return 0, err
			}
			if kind != websocket.TextMessage && kind != websocket.BinaryMessage {
				continue
			}
			c.pending = r
		}
		n, err := c.pending.Read(p)
		if err == io.EOF {
			c.pending = nil
			if n == 0 {
				continue
			}
			return n, nil
		}
		return n, err
	}
}

func (c *wsConn) Write(p []byte) (int, error) {
	if err := c.ws.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *wsConn) Close() error { return c.ws.Close() }

func (c *wsConn) LocalAddr() net.Addr  { return c.ws.LocalAddr() }
func (c *wsConn) RemoteAddr() net.Addr { return c.ws.RemoteAddr() }

func (c *wsConn) SetDeadline(t time.Time) error {
	if err := c.ws.SetReadDeadline(t); err != nil {
		return err
	}
	return c.ws.SetWriteDeadline(t)
}

func (c *wsConn) SetReadDeadline(t time.Time) error  { return c.ws.SetReadDeadline(t) }
func (c *wsConn) SetWriteDeadline(t time.Time) error { return c.ws.SetWriteDeadline(t) }
