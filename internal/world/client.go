package world

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/Nokkasiili/minigolf-server/internal/constants"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// Client is one logged-in player. The connection goroutines only touch the
// outbox, the inbound channel, and the packet counter; every other field is
// read and written by the tick loop alone.
type Client struct {
	id        ClientID
	networkID NetworkID
	seed      int

	name     string
	clan     string
	language string

	lobby    protocol.LobbyType
	hasLobby bool
	game     GameID

	noChallenges bool

	lastPong time.Time

	sent atomic.Uint32

	out *Outbox
	in  <-chan protocol.Packet
}

// ClientParams carries a freshly authenticated connection into the world.
type ClientParams struct {
	Out       *Outbox
	In        <-chan protocol.Packet
	Name      string
	Language  string
	NetworkID NetworkID
	Seed      int
	// LastNum is the last packet number the login conversation used.
	LastNum uint32
}

// NewClient builds the registry entry for a finished login. The id comes
// later, when the tick loop registers the client.
func NewClient(p ClientParams) *Client {
	c := &Client{
		networkID: p.NetworkID,
		seed:      p.Seed,
		name:      p.Name,
		clan:      "-",
		language:  p.Language,
		game:      NoGame,
		lastPong:  time.Now(),
		out:       p.Out,
		in:        p.In,
	}
	c.sent.Store(p.LastNum)
	return c
}

// ID returns the registry slot. Valid once the client is registered.
func (c *Client) ID() ClientID { return c.id }

// NetworkID returns the id announced to the client in "c id".
func (c *Client) NetworkID() NetworkID { return c.networkID }

// Seed returns the connection cipher seed issued at handshake.
func (c *Client) Seed() int { return c.seed }

// Name returns the nickname, "~"-prefixed for guests.
func (c *Client) Name() string { return c.name }

// Clan returns the clan tag in wire form, "-" when the player has none.
func (c *Client) Clan() string { return c.clan }

// Language returns the locale the client reported, like "fi_FI".
func (c *Client) Language() string { return c.language }

// Lobby returns the lobby the client is in, if any.
func (c *Client) Lobby() (protocol.LobbyType, bool) {
	return c.lobby, c.hasLobby
}

// SetLobby moves the client into a lobby.
func (c *Client) SetLobby(t protocol.LobbyType) {
	c.lobby = t
	c.hasLobby = true
}

// ClearLobby moves the client back to the lobby select screen.
func (c *Client) ClearLobby() {
	c.lobby = 0
	c.hasLobby = false
}

// InLobby reports whether the client is in the given lobby.
func (c *Client) InLobby(t protocol.LobbyType) bool {
	return c.hasLobby && c.lobby == t
}

// Game returns the room the client is seated in, if any.
func (c *Client) Game() (GameID, bool) {
	return c.game, c.game != NoGame
}

// SetGame seats the client in a room.
func (c *Client) SetGame(id GameID) { c.game = id }

// ClearGame unseats the client.
func (c *Client) ClearGame() { c.game = NoGame }

// InGame reports whether the client is seated in any room.
func (c *Client) InGame() bool { return c.game != NoGame }

// NoChallenges reports whether the client declines duo challenges.
func (c *Client) NoChallenges() bool { return c.noChallenges }

// SetNoChallenges stores the dual lobby challenge preference.
func (c *Client) SetNoChallenges(v bool) { c.noChallenges = v }

// LastPong returns when the client last answered a ping.
func (c *Client) LastPong() time.Time { return c.lastPong }

// SetLastPong records an incoming pong.
func (c *Client) SetLastPong(t time.Time) { c.lastPong = t }

// NextNum returns the next packet number. Numbers are handed out in send
// order, continuing the login conversation's count.
func (c *Client) NextNum() protocol.D {
	return protocol.D(c.sent.Add(1))
}

// Send queues a packet without blocking. Packets to a closed connection are
// quietly dropped.
func (c *Client) Send(p protocol.Packet) {
	c.out.Push(p)
}

// Poll returns the next pending inbound packet, if any.
func (c *Client) Poll() (protocol.Packet, bool) {
	select {
	case p, ok := <-c.in:
		if !ok {
			return nil, false
		}
		return p, true
	default:
		return nil, false
	}
}

// Disconnect severs the connection. The writer flushes what is queued and
// the reaper removes the client on the next tick.
func (c *Client) Disconnect() {
	c.out.Close()
}

// Disconnected reports whether the connection is gone or going.
func (c *Client) Disconnected() bool {
	return c.out.Closed()
}

// StatusString encodes the status letters shown in user lists: w for
// guests, r for registered names, plus n when challenges are declined.
func (c *Client) StatusString() string {
	var b strings.Builder
	if strings.HasPrefix(c.name, "~") {
		b.WriteByte('w')
	} else {
		b.WriteByte('r')
	}
	if c.noChallenges {
		b.WriteByte('n')
	}
	return b.String()
}

// User returns the lobby listing record for this client.
func (c *Client) User() protocol.User {
	return protocol.User{
		Name:  "3:" + c.name,
		Flags: c.StatusString(),
		Rank:  constants.RankPlaceholder,
		Lang:  c.language,
		Clan:  "-",
		Extra: "-",
	}
}
