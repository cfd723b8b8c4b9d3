package gameserver

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/Nokkasiili/minigolf-server/internal/config"
	"github.com/Nokkasiili/minigolf-server/internal/constants"
	"github.com/Nokkasiili/minigolf-server/internal/game"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// Server accepts golf clients on port 4242 and runs the game world. All
// world and room state belongs to the tick loop; the rest of the struct
// is connection plumbing.
type Server struct {
	cfg     config.Server
	clients *world.Clients
	rooms   *game.Rooms
	ids     *world.IDGenerator
	handoff chan world.ClientParams

	listener net.Listener
	mu       sync.Mutex
}

// NewServer builds a server with an empty world.
func NewServer(cfg config.Server) *Server {
	return &Server{
		cfg:     cfg,
		clients: world.NewClients(),
		rooms:   game.NewRooms(),
		ids:     world.NewIDGenerator(),
		handoff: make(chan world.ClientParams, constants.HandoffQueueSize),
	}
}

// Addr returns the address the server is listening on, nil before Run.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Run binds the configured address and serves until the context ends.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.BindAddress, s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s (is the server already running?): %w", addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	return s.Serve(ctx, ln)
}

// Serve accepts connections from the given listener. Split from Run so
// tests can pass their own listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	slog.Info("golf server listening", "address", ln.Addr())

	var wg sync.WaitGroup
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			slog.Error("accept failed", "error", err)
			continue
		}

		if tcpConn, ok := conn.(*net.TCPConn); ok {
			if err := tcpConn.SetKeepAlive(true); err != nil {
				slog.Warn("set keepalive failed", "error", err)
			}
			if err := tcpConn.SetKeepAlivePeriod(30 * time.Second); err != nil {
				slog.Warn("set keepalive period failed", "error", err)
			}
		}

		wg.Go(func() {
			s.handleConnection(ctx, conn)
		})
	}

	wg.Wait()
	return nil
}

// handleConnection walks the login conversation, hands the player to the
// tick loop and then pumps the connection until either side goes away.
func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	slog.Debug("new connection", "remote", remote)

	codec := NewCodec(clientpackets.Parse, Ciphers{})
	params, err := newHandshake(conn, codec, s).run()
	if err != nil {
		slog.Info("login conversation failed", "remote", remote, "error", err)
		return
	}

	out := world.NewOutbox(s.cfg.SendQueueSize)
	w := newWorker(conn, codec, out,
		constants.InboundQueueSize,
		[2]time.Duration{s.cfg.ReadTimeout, s.cfg.WriteTimeout},
		params.LastNum)
	params.Out = out
	params.In = w.in

	select {
	case s.handoff <- params:
	case <-ctx.Done():
		return
	}

	go func() {
		<-ctx.Done()
		out.Close()
	}()

	go w.writePump()
	w.readPump()
}
