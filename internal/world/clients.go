package world

import (
	"sync/atomic"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// Clients is the arena of registered players. Slots are reused through a
// free list, so ClientIDs stay small and iteration order is stable.
//
// Apart from Len, which connection handlers consult for the server-full
// check, all methods belong to the tick goroutine.
type Clients struct {
	slots []*Client
	free  []ClientID
	count atomic.Int64
}

// NewClients returns an empty registry.
func NewClients() *Clients {
	return &Clients{}
}

// Add registers a client and assigns its id.
func (cs *Clients) Add(c *Client) ClientID {
	var id ClientID
	if n := len(cs.free); n > 0 {
		id = cs.free[n-1]
		cs.free = cs.free[:n-1]
		cs.slots[id] = c
	} else {
		id = ClientID(len(cs.slots))
		cs.slots = append(cs.slots, c)
	}
	c.id = id
	cs.count.Add(1)
	return id
}

// Get returns the client in the given slot, or nil.
func (cs *Clients) Get(id ClientID) *Client {
	if id < 0 || int(id) >= len(cs.slots) {
		return nil
	}
	return cs.slots[id]
}

// Remove frees the client's slot for reuse.
func (cs *Clients) Remove(id ClientID) {
	if cs.Get(id) == nil {
		return
	}
	cs.slots[id] = nil
	cs.free = append(cs.free, id)
	cs.count.Add(-1)
}

// Len returns the number of registered clients. Safe from any goroutine.
func (cs *Clients) Len() int {
	return int(cs.count.Load())
}

// ByName returns the client with the exact nickname, or nil.
func (cs *Clients) ByName(name string) *Client {
	for _, c := range cs.slots {
		if c != nil && c.name == name {
			return c
		}
	}
	return nil
}

// ByNetworkID returns the client with the given network id, or nil.
func (cs *Clients) ByNetworkID(nid NetworkID) *Client {
	for _, c := range cs.slots {
		if c != nil && c.networkID == nid {
			return c
		}
	}
	return nil
}

// ForEach calls fn for every registered client in slot order.
func (cs *Clients) ForEach(fn func(*Client)) {
	for _, c := range cs.slots {
		if c != nil {
			fn(c)
		}
	}
}

// ForEachLobby calls fn for every client in the given lobby, seated in a
// room or not. Chat reaches players who are already off playing.
func (cs *Clients) ForEachLobby(lobby protocol.LobbyType, fn func(*Client)) {
	for _, c := range cs.slots {
		if c != nil && c.InLobby(lobby) {
			fn(c)
		}
	}
}

// ForEachIdle calls fn for every client sitting on the given lobby screen,
// skipping those seated in a room. Gamelist and join/part updates only go
// to this set.
func (cs *Clients) ForEachIdle(lobby protocol.LobbyType, fn func(*Client)) {
	for _, c := range cs.slots {
		if c != nil && c.InLobby(lobby) && !c.InGame() {
			fn(c)
		}
	}
}

// LobbyUserlist collects the user records for a lobby listing: everyone in
// the lobby except the asking client and those already in a room. Returns
// nil when the listing would be empty.
func (cs *Clients) LobbyUserlist(self ClientID, lobby protocol.LobbyType) []protocol.User {
	var users []protocol.User
	for _, c := range cs.slots {
		if c == nil || c.id == self || c.InGame() || !c.InLobby(lobby) {
			continue
		}
		users = append(users, c.User())
	}
	return users
}

// Census is the lobby population split the client shows on the lobby select
// screen and in lobby headers. SoloIncognito counts as Solo.
type Census struct {
	SoloLobby    int
	SoloPlaying  int
	DuoLobby     int
	DuoPlaying   int
	MultiLobby   int
	MultiPlaying int
}

// CountSplit tallies every client with a lobby, split by whether they are
// seated in a room.
func (cs *Clients) CountSplit() Census {
	var n Census
	for _, c := range cs.slots {
		if c == nil || !c.hasLobby {
			continue
		}
		playing := c.InGame()
		switch c.lobby {
		case protocol.LobbySolo, protocol.LobbySoloIncognito:
			if playing {
				n.SoloPlaying++
			} else {
				n.SoloLobby++
			}
		case protocol.LobbyDuo:
			if playing {
				n.DuoPlaying++
			} else {
				n.DuoLobby++
			}
		case protocol.LobbyMulti:
			if playing {
				n.MultiPlaying++
			} else {
				n.MultiLobby++
			}
		}
	}
	return n
}

// CountPlayers returns per-lobby totals regardless of game state.
func (cs *Clients) CountPlayers() (solo, duo, multi int) {
	n := cs.CountSplit()
	return n.SoloLobby + n.SoloPlaying,
		n.DuoLobby + n.DuoPlaying,
		n.MultiLobby + n.MultiPlaying
}
