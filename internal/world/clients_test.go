package world

import (
	"testing"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
)

func testClient(name string) (*Client, chan protocol.Packet) {
	in := make(chan protocol.Packet, 4)
	c := NewClient(ClientParams{
		Out:       NewOutbox(8),
		In:        in,
		Name:      name,
		Language:  "fi_FI",
		NetworkID: 1,
		Seed:      123456789,
		LastNum:   3,
	})
	return c, in
}

func TestClients_AddGetRemove(t *testing.T) {
	cs := NewClients()
	if cs.Len() != 0 {
		t.Fatalf("empty registry Len() = %d, want 0", cs.Len())
	}

	a, _ := testClient("Alice")
	b, _ := testClient("Bob")
	ida := cs.Add(a)
	idb := cs.Add(b)

	if ida == idb {
		t.Fatalf("Add handed out the same id twice: %d", ida)
	}
	if a.ID() != ida {
		t.Errorf("client id not assigned: got %d, want %d", a.ID(), ida)
	}
	if got := cs.Get(ida); got != a {
		t.Error("Get(ida) returned wrong client")
	}
	if cs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cs.Len())
	}

	cs.Remove(ida)
	if cs.Get(ida) != nil {
		t.Error("Get after Remove should be nil")
	}
	if cs.Len() != 1 {
		t.Errorf("Len() after remove = %d, want 1", cs.Len())
	}

	// the freed slot is reused
	c, _ := testClient("Carol")
	idc := cs.Add(c)
	if idc != ida {
		t.Errorf("freed id not reused: got %d, want %d", idc, ida)
	}
	if cs.Get(idb) != b {
		t.Error("unrelated slot disturbed by reuse")
	}
}

func TestClients_RemoveTwice(t *testing.T) {
	cs := NewClients()
	a, _ := testClient("Alice")
	id := cs.Add(a)
	cs.Remove(id)
	cs.Remove(id)
	if cs.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cs.Len())
	}
	b, _ := testClient("Bob")
	c, _ := testClient("Carol")
	idb := cs.Add(b)
	idc := cs.Add(c)
	if idb == idc {
		t.Errorf("double remove made one slot two clients: %d", idb)
	}
}

func TestClients_ByName(t *testing.T) {
	cs := NewClients()
	a, _ := testClient("Alice")
	cs.Add(a)

	if cs.ByName("Alice") != a {
		t.Error("ByName missed a registered client")
	}
	if cs.ByName("alice") != nil {
		t.Error("ByName should match exactly")
	}
	if cs.ByName("Bob") != nil {
		t.Error("ByName invented a client")
	}
}

func TestClients_ByNetworkID(t *testing.T) {
	cs := NewClients()
	a, _ := testClient("Alice")
	cs.Add(a)

	if cs.ByNetworkID(1) != a {
		t.Error("ByNetworkID missed a registered client")
	}
	if cs.ByNetworkID(99) != nil {
		t.Error("ByNetworkID invented a client")
	}
}

func TestClients_CountSplit(t *testing.T) {
	cs := NewClients()
	for _, name := range []string{"a", "b", "c"} {
		c, _ := testClient(name)
		c.SetLobby(protocol.LobbySolo)
		cs.Add(c)
	}
	d, _ := testClient("d")
	d.SetLobby(protocol.LobbyDuo)
	d.SetGame(GameID(0))
	cs.Add(d)
	// no lobby yet, stays out of the census
	e, _ := testClient("e")
	cs.Add(e)

	got := cs.CountSplit()
	want := Census{SoloLobby: 3, DuoPlaying: 1}
	if got != want {
		t.Errorf("CountSplit() = %+v, want %+v", got, want)
	}

	solo, duo, multi := cs.CountPlayers()
	if solo != 3 || duo != 1 || multi != 0 {
		t.Errorf("CountPlayers() = %d,%d,%d, want 3,1,0", solo, duo, multi)
	}
}

func TestClients_CountSplitFoldsIncognito(t *testing.T) {
	cs := NewClients()
	a, _ := testClient("a")
	a.SetLobby(protocol.LobbySoloIncognito)
	cs.Add(a)

	if got := cs.CountSplit(); got.SoloLobby != 1 {
		t.Errorf("incognito not folded into solo: %+v", got)
	}
}

func TestClients_LobbyUserlist(t *testing.T) {
	cs := NewClients()
	self, _ := testClient("Me")
	self.SetLobby(protocol.LobbyDuo)
	selfID := cs.Add(self)

	other, _ := testClient("Other")
	other.SetLobby(protocol.LobbyDuo)
	cs.Add(other)

	playing, _ := testClient("Playing")
	playing.SetLobby(protocol.LobbyDuo)
	playing.SetGame(GameID(2))
	cs.Add(playing)

	elsewhere, _ := testClient("Elsewhere")
	elsewhere.SetLobby(protocol.LobbyMulti)
	cs.Add(elsewhere)

	users := cs.LobbyUserlist(selfID, protocol.LobbyDuo)
	if len(users) != 1 {
		t.Fatalf("userlist has %d entries, want 1: %v", len(users), users)
	}
	if users[0].Name != "3:Other" {
		t.Errorf("userlist entry = %q, want 3:Other", users[0].Name)
	}

	// alone in the lobby means no listing at all
	empty := cs.LobbyUserlist(selfID, protocol.LobbyMulti)
	if empty != nil && len(empty) != 0 {
		t.Errorf("expected empty userlist, got %v", empty)
	}
}

func TestClient_StatusString(t *testing.T) {
	cases := []struct {
		name         string
		noChallenges bool
		want         string
	}{
		{"Nokkasiili", false, "r"},
		{"Nokkasiili", true, "rn"},
		{"~anonym-2893", false, "w"},
		{"~anonym-2893", true, "wn"},
	}
	for _, cse := range cases {
		c, _ := testClient(cse.name)
		c.SetNoChallenges(cse.noChallenges)
		if got := c.StatusString(); got != cse.want {
			t.Errorf("StatusString(%q, nc=%v) = %q, want %q", cse.name, cse.noChallenges, got, cse.want)
		}
	}
}

func TestClient_User(t *testing.T) {
	c, _ := testClient("Benny")
	u := c.User()
	if got := u.String(); got != "3:Benny^r^999^fi_FI^-^-" {
		t.Errorf("User() = %q", got)
	}
}

func TestClient_NextNum(t *testing.T) {
	c, _ := testClient("Alice")
	for want := protocol.D(4); want < 7; want++ {
		if got := c.NextNum(); got != want {
			t.Errorf("NextNum() = %d, want %d", got, want)
		}
	}
}

func TestClient_LobbyAndGameState(t *testing.T) {
	c, _ := testClient("Alice")

	if _, ok := c.Lobby(); ok {
		t.Error("fresh client should have no lobby")
	}
	c.SetLobby(protocol.LobbyMulti)
	if lobby, ok := c.Lobby(); !ok || lobby != protocol.LobbyMulti {
		t.Errorf("Lobby() = %v,%v", lobby, ok)
	}
	if !c.InLobby(protocol.LobbyMulti) || c.InLobby(protocol.LobbySolo) {
		t.Error("InLobby mismatch")
	}
	c.ClearLobby()
	if _, ok := c.Lobby(); ok {
		t.Error("ClearLobby did not clear")
	}

	if c.InGame() {
		t.Error("fresh client should not be in a game")
	}
	c.SetGame(GameID(3))
	if id, ok := c.Game(); !ok || id != GameID(3) {
		t.Errorf("Game() = %v,%v", id, ok)
	}
	c.ClearGame()
	if c.InGame() {
		t.Error("ClearGame did not clear")
	}
}

func TestClient_Poll(t *testing.T) {
	c, in := testClient("Alice")
	if _, ok := c.Poll(); ok {
		t.Error("Poll on empty queue should report nothing")
	}
	in <- &serverpackets.Ping{}
	if p, ok := c.Poll(); !ok || p == nil {
		t.Error("queued packet not returned")
	}
}

func TestIDGenerator(t *testing.T) {
	g := NewIDGenerator()
	for want := NetworkID(1); want <= 3; want++ {
		if got := g.Next(); got != want {
			t.Errorf("Next() = %d, want %d", got, want)
		}
	}
}
