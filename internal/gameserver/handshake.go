package gameserver

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"time"

	"github.com/Nokkasiili/minigolf-server/internal/constants"
	"github.com/Nokkasiili/minigolf-server/internal/crypt"
	"github.com/Nokkasiili/minigolf-server/internal/filter"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// handshake walks a fresh connection through the fixed login
// conversation. It runs alone on the connection goroutine; the pumps only
// start once it has produced the player parameters.
type handshake struct {
	conn  net.Conn
	codec *Codec
	srv   *Server
	buf   []byte
	sent  uint32
}

func newHandshake(conn net.Conn, codec *Codec, srv *Server) *handshake {
	return &handshake{conn: conn, codec: codec, srv: srv, buf: make([]byte, constants.ReadChunkSize)}
}

// run performs the whole conversation. Any error closes the socket
// without ceremony, matching what clients expect from the original
// service.
func (h *handshake) run() (world.ClientParams, error) {
	var p world.ClientParams

	seed := int32(constants.SeedMin + rand.IntN(constants.SeedMax-constants.SeedMin+1))
	preamble := (&serverpackets.H{Value: 1}).Write() +
		(&serverpackets.Io{Seed: int(seed)}).Write() +
		(&serverpackets.Crt{Value: constants.HandshakeCrt}).Write() +
		(&serverpackets.Ctr{}).Write()
	if err := h.writeRaw([]byte(preamble)); err != nil {
		return p, err
	}
	if h.srv.cfg.Encryption {
		h.codec.ciphers = Ciphers{
			Conn: crypt.NewConnCipher(crypt.DefaultMagic, seed),
			Dict: crypt.NewGameCipher(),
		}
	}

	pkt, err := h.read()
	if err != nil {
		return p, err
	}
	switch pkt.(type) {
	case *clientpackets.New:
	case *clientpackets.Old:
		// resumption is not supported, hand out a fresh id instead
	default:
		return p, fmt.Errorf("expected new, got %T", pkt)
	}

	nid := h.srv.ids.Next()
	if err := h.write(&serverpackets.Id{Value: int(nid)}); err != nil {
		return p, err
	}

	pkt, err = h.read()
	if err != nil {
		return p, err
	}
	version, ok := pkt.(*clientpackets.Version)
	if !ok {
		return p, fmt.Errorf("expected version, got %T", pkt)
	}
	if version.Version != constants.ClientVersion {
		h.write(&serverpackets.Error{D: 0, Error: protocol.ErrorVerNotOk})
		return p, fmt.Errorf("unsupported client version %d", version.Version)
	}
	if err := h.write(&serverpackets.VersOk{D: 0}); err != nil {
		return p, err
	}

	pkt, err = h.read()
	if err != nil {
		return p, err
	}
	if _, ok := pkt.(*clientpackets.TLog); !ok {
		return p, fmt.Errorf("expected tlog, got %T", pkt)
	}

	pkt, err = h.read()
	if err != nil {
		return p, err
	}
	language, ok := pkt.(*clientpackets.Language)
	if !ok {
		return p, fmt.Errorf("expected language, got %T", pkt)
	}

	pkt, err = h.read()
	if err != nil {
		return p, err
	}
	if _, ok := pkt.(*clientpackets.LoginType); !ok {
		return p, fmt.Errorf("expected logintype, got %T", pkt)
	}

	if err := h.write(&serverpackets.StatusLogin{D: h.next()}); err != nil {
		return p, err
	}

	name, err := h.login()
	if err != nil {
		return p, err
	}

	if int(h.srv.clients.Len()) >= h.srv.cfg.MaxClients {
		h.write(&serverpackets.Error{D: 0, Error: protocol.ErrorServerFull})
		return p, fmt.Errorf("server full at %d clients", h.srv.cfg.MaxClients)
	}

	if err := h.write(&serverpackets.BasicInfo{
		D:                h.next(),
		UnconfirmedEmail: true,
		AccessLevel:      0,
		BadwordFilter:    true,
		GuestChat:        false,
	}); err != nil {
		return p, err
	}
	if err := h.write(&serverpackets.StatusLobbySelect{D: h.next(), Lobby: constants.LobbySelectStatus}); err != nil {
		return p, err
	}

	slog.Info("player logged in", "name", name, "id", int(nid), "language", language.Language)

	p.Name = name
	p.Language = language.Language
	p.NetworkID = nid
	p.Seed = int(seed)
	p.LastNum = h.sent
	return p, nil
}

// login reads ttlogin attempts until one yields an acceptable name.
// Guests without a username get an anonymous one.
func (h *handshake) login() (string, error) {
	for {
		pkt, err := h.read()
		if err != nil {
			return "", err
		}
		login, ok := pkt.(*clientpackets.TTLogin)
		if !ok {
			return "", fmt.Errorf("expected ttlogin, got %T", pkt)
		}
		if login.Username == "" {
			return fmt.Sprintf("~anonym-%d", rand.IntN(constants.AnonymousNameLimit)), nil
		}
		name := filter.NameFilter(login.Username)
		if name != "" && !filter.ContainsBadWords(filter.Filter(name)) {
			return name, nil
		}
		slog.Debug("rejected nick", "raw", login.Username)
		err = h.write(&serverpackets.StatusLogin{D: h.next(), Status: protocol.LoginForbiddenNick})
		if err != nil {
			return "", err
		}
	}
}

func (h *handshake) next() protocol.D {
	h.sent++
	return protocol.D(h.sent)
}

// read returns the next parsed packet, pulling more bytes as needed.
func (h *handshake) read() (protocol.Packet, error) {
	for {
		pkt, err := h.codec.Next()
		if err != nil {
			return nil, err
		}
		if pkt != nil {
			return pkt, nil
		}
		if err := h.conn.SetReadDeadline(time.Now().Add(h.srv.cfg.ReadTimeout)); err != nil {
			return nil, err
		}
		n, err := h.conn.Read(h.buf)
		if err != nil {
			return nil, err
		}
		if err := h.codec.Accept(h.buf[:n]); err != nil {
			return nil, err
		}
	}
}

func (h *handshake) write(p protocol.Packet) error {
	return h.writeRaw(h.codec.Encode(p))
}

func (h *handshake) writeRaw(b []byte) error {
	if err := h.conn.SetWriteDeadline(time.Now().Add(h.srv.cfg.WriteTimeout)); err != nil {
		return err
	}
	_, err := h.conn.Write(b)
	return err
}
