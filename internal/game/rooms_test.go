package game

import (
	"testing"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

func soloPacket() *clientpackets.LobbyCspt {
	return &clientpackets.LobbyCspt{
		NumTracks:  9,
		TrackType:  protocol.TrackAll,
		WaterEvent: protocol.WaterBackToStart,
	}
}

func multiPacket(name string) *clientpackets.LobbyCmpt {
	return &clientpackets.LobbyCmpt{
		GameName:   name,
		Password:   "-",
		Permission: 0,
		MaxPlayers: 2,
		NumTracks:  18,
		TrackType:  protocol.TrackAll,
		MaxStrokes: 0,
		TimeLimit:  0,
		WaterEvent: protocol.WaterBackToStart,
		Collision:  protocol.CollisionOn,
		Scoring:    protocol.ScoringScore,
		WeightEnd:  protocol.WeightNone,
	}
}

func TestRooms_AddRemoveReusesSlots(t *testing.T) {
	rs := NewRooms()
	a := rs.Add(&Room{maxPlayers: 1})
	b := rs.Add(&Room{maxPlayers: 1})
	if a == b {
		t.Fatalf("Add handed out the same id twice: %d", a)
	}

	rs.Remove(a)
	if rs.Get(a) != nil {
		t.Error("Get after Remove should be nil")
	}

	c := rs.Add(&Room{maxPlayers: 1})
	if c != a {
		t.Errorf("freed id not reused: got %d, want %d", c, a)
	}
	if rs.Get(b) == nil {
		t.Error("unrelated slot lost on reuse")
	}
}

func TestRooms_ByNetworkID(t *testing.T) {
	rs := NewRooms()
	id := rs.CreateSolo(0, soloPacket())
	room := rs.Get(id)

	gotID, gotRoom := rs.ByNetworkID(room.NetworkID())
	if gotID != id || gotRoom != room {
		t.Errorf("ByNetworkID(%d) = %d, %p, want %d, %p", room.NetworkID(), gotID, gotRoom, id, room)
	}
	if _, r := rs.ByNetworkID(999); r != nil {
		t.Error("unknown network id should find nothing")
	}
}

func TestRooms_CreateSolo(t *testing.T) {
	rs := NewRooms()
	id := rs.CreateSolo(5, soloPacket())
	r := rs.Get(id)
	if r == nil {
		t.Fatal("solo room not stored")
	}
	if r.Type() != protocol.LobbySolo {
		t.Errorf("Type = %v, want solo", r.Type())
	}
	if r.MaxPlayers() != 1 {
		t.Errorf("MaxPlayers = %d, want 1", r.MaxPlayers())
	}
	if len(r.Seats()) != 1 || r.Seats()[0].ID != 5 {
		t.Error("creator not seated")
	}
	if r.Status() != WaitingPlayers {
		t.Errorf("Status = %v, want WaitingPlayers", r.Status())
	}
}

func TestRooms_CreateMultiCollapsesPlaceholders(t *testing.T) {
	rs := NewRooms()
	id := rs.CreateMulti(0, multiPacket("-"))
	r := rs.Get(id)

	if r.name != "" {
		t.Errorf("placeholder name kept: %q", r.name)
	}
	if r.password != "" {
		t.Errorf("placeholder password kept: %q", r.password)
	}
	g := r.Summary()
	if g.Passworded {
		t.Error("placeholder password flagged the room as locked")
	}

	named := rs.Get(rs.CreateMulti(0, multiPacket("koloset")))
	if named.Name() != "koloset" {
		t.Errorf("Name = %q, want %q", named.Name(), "koloset")
	}
}

func TestRooms_ChallengeLifecycle(t *testing.T) {
	rs := NewRooms()
	p := &clientpackets.LobbyChallenge{
		Challenged: "Bob",
		NumTracks:  9,
		TrackType:  protocol.TrackAll,
		WaterEvent: protocol.WaterBackToStart,
		Collision:  protocol.CollisionOn,
		Scoring:    protocol.ScoringScore,
		WeightEnd:  protocol.WeightNone,
	}
	id := rs.CreateChallenge(p, "Alice")
	r := rs.Get(id)

	if r.Type() != protocol.LobbyDuo {
		t.Errorf("Type = %v, want duo", r.Type())
	}
	if len(r.Seats()) != 0 {
		t.Error("challenge room should start unseated")
	}

	gotID, gotRoom := rs.FindDuo("Bob", "Alice")
	if gotID != id || gotRoom != r {
		t.Error("FindDuo did not locate the pending challenge")
	}
	if _, found := rs.FindDuo("Bob", "Mallory"); found != nil {
		t.Error("FindDuo matched the wrong challenger")
	}

	rs.RemoveDuo("Alice")
	if rs.Get(id) != nil {
		t.Error("RemoveDuo left the challenge room behind")
	}
}

func TestRooms_GameList(t *testing.T) {
	rs := NewRooms()
	n, games := rs.GameList()
	if n != 0 || games != nil {
		t.Fatalf("empty arena GameList = %d, %v", n, games)
	}

	rs.CreateMulti(0, multiPacket("open"))
	started := rs.Get(rs.CreateMulti(1, multiPacket("busy")))
	started.status = InGame

	n, games = rs.GameList()
	if n != 1 || len(games) != 1 {
		t.Fatalf("GameList = %d entries, want 1", n)
	}
	if games[0].Name != "open" {
		t.Errorf("listed %q, want %q", games[0].Name, "open")
	}
}

func TestRooms_HandleRoomsStartsFullRoom(t *testing.T) {
	cs := world.NewClients()
	a, outA := addClient(t, cs, "Alice")
	b, outB := addClient(t, cs, "Bob")
	idle, outIdle := addClient(t, cs, "Watcher")
	idle.SetLobby(protocol.LobbyMulti)

	rs := NewRooms()
	id := rs.CreateMulti(a.ID(), multiPacket("koloset"))
	room := rs.Get(id)
	room.AddPlayer(b.ID())

	rs.HandleRooms(cs)

	if room.Status() != InGame {
		t.Fatalf("full room not started: %v", room.Status())
	}
	for _, out := range []*world.Outbox{outA, outB} {
		got := drain(t, out)
		if len(got) != 3 {
			t.Fatalf("player got %d packets on start, want 3", len(got))
		}
	}

	// idle lobby players see the room leave the gamelist
	got := drain(t, outIdle)
	if len(got) != 1 {
		t.Fatalf("idle player got %d packets, want 1", len(got))
	}
	rm, ok := got[0].(*serverpackets.LobbyGamelistRemove)
	if !ok {
		t.Fatalf("idle packet is %T, want LobbyGamelistRemove", got[0])
	}
	if rm.ID != int(room.NetworkID()) {
		t.Errorf("removed id = %d, want %d", rm.ID, int(room.NetworkID()))
	}
}

func TestRooms_HandleRoomsReapsEmptyRoom(t *testing.T) {
	cs := world.NewClients()
	idle, outIdle := addClient(t, cs, "Watcher")
	idle.SetLobby(protocol.LobbyMulti)

	rs := NewRooms()
	id := rs.CreateMulti(99, multiPacket("ghost"))
	rs.Get(id).RemoveSeat(0)

	rs.HandleRooms(cs)
	if rs.Get(id) != nil {
		t.Fatal("empty room survived the sweep")
	}

	got := drain(t, outIdle)
	if len(got) != 1 {
		t.Fatalf("idle player got %d packets, want 1", len(got))
	}
	if _, ok := got[0].(*serverpackets.LobbyGamelistRemove); !ok {
		t.Errorf("idle packet is %T, want LobbyGamelistRemove", got[0])
	}
}

func TestRooms_HandleRoomsAdvancesTurn(t *testing.T) {
	cs := world.NewClients()
	a, outA := addClient(t, cs, "Alice")
	b, outB := addClient(t, cs, "Bob")

	rs := NewRooms()
	id := rs.CreateMulti(a.ID(), multiPacket("koloset"))
	room := rs.Get(id)
	room.AddPlayer(b.ID())
	room.status = InGame
	room.curTrack = 1
	for _, s := range room.seats {
		s.SentEndStroke = true
	}

	rs.HandleRooms(cs)

	if room.Turn() != 1 {
		t.Errorf("turn = %d, want 1", room.Turn())
	}
	for _, s := range room.seats {
		if s.SentEndStroke {
			t.Error("end stroke flag not cleared after rotation")
		}
	}
	for _, out := range []*world.Outbox{outA, outB} {
		got := drain(t, out)
		if len(got) != 1 {
			t.Fatalf("player got %d packets, want 1", len(got))
		}
		turn, ok := got[0].(*serverpackets.GameStartTurn)
		if !ok {
			t.Fatalf("packet is %T, want GameStartTurn", got[0])
		}
		if turn.Index != 1 {
			t.Errorf("turn index = %d, want 1", turn.Index)
		}
	}
}

func TestRooms_HandleRoomsSkipVote(t *testing.T) {
	cs := world.NewClients()
	a, outA := addClient(t, cs, "Alice")

	rs := NewRooms()
	id := rs.CreateSolo(a.ID(), soloPacket())
	room := rs.Get(id)
	room.status = InGame
	room.curTrack = 1
	room.seats[0].WantSkip = true

	rs.HandleRooms(cs)

	if room.curTrack != 2 {
		t.Errorf("curTrack = %d, want 2", room.curTrack)
	}
	got := drain(t, outA)
	if len(got) != 3 {
		t.Fatalf("skip advance sent %d packets, want 3", len(got))
	}
	if _, ok := got[0].(*serverpackets.GameResetVoteSkip); !ok {
		t.Errorf("packet 0 is %T, want GameResetVoteSkip", got[0])
	}
}
