package gameserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nokkasiili/minigolf-server/internal/config"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/testutil"
)

// expectLimit bounds how many unrelated packets a test skips while
// waiting for the one it asserts on. Lobby traffic between ticks is
// small, so anything past this is a bug.
const expectLimit = 24

// startServer runs a complete server (accept loop plus tick loop) on an
// ephemeral port and returns its address.
func startServer(t *testing.T) string {
	t.Helper()

	srv := NewServer(config.Default())
	ln := testutil.ListenTCP(t)
	ctx, _ := testutil.ContextWithCancel(t)

	go func() { _ = srv.Serve(ctx, ln) }()
	go func() { _ = srv.RunTicks(ctx) }()

	return ln.Addr().String()
}

// joinLobby logs the client in and walks it into the given lobby.
func joinLobby(t *testing.T, gc *testutil.GolfClient, lobby protocol.LobbyType) {
	t.Helper()

	gc.Send(&clientpackets.LobbySelectSelect{D: gc.NextNum(), Lobby: lobby})
	testutil.Expect[*serverpackets.StatusLobby](gc, expectLimit)
	testutil.Expect[*serverpackets.LobbyOwnJoin](gc, expectLimit)
}

func TestServer_LobbySelectCensus(t *testing.T) {
	addr := startServer(t)

	gc := testutil.DialGolf(t, addr)
	gc.Login("")

	gc.Send(&clientpackets.LobbySelectRnop{D: gc.NextNum()})
	nop := testutil.Expect[*serverpackets.LobbySelectNop](gc, expectLimit)
	assert.Zero(t, nop.Single)
	assert.Zero(t, nop.Versus)
	assert.Zero(t, nop.Multi)

	other := testutil.DialGolf(t, addr)
	other.Login("Kaveri")
	joinLobby(t, other, protocol.LobbySolo)

	gc.Send(&clientpackets.LobbySelectRnop{D: gc.NextNum()})
	nop = testutil.Expect[*serverpackets.LobbySelectNop](gc, expectLimit)
	assert.Equal(t, 1, nop.Single)
	assert.Zero(t, nop.Versus)
}

func TestServer_LobbyChat(t *testing.T) {
	addr := startServer(t)

	alice := testutil.DialGolf(t, addr)
	alice.Login("Liisa")
	joinLobby(t, alice, protocol.LobbySolo)

	bob := testutil.DialGolf(t, addr)
	bob.Login("Pekka")
	joinLobby(t, bob, protocol.LobbySolo)

	join := testutil.Expect[*serverpackets.LobbyJoin](alice, expectLimit)
	assert.Equal(t, "3:Pekka", join.User.Name)

	alice.Send(&clientpackets.LobbySay{D: alice.NextNum(), LobbyTab: "-", Message: "moi"})
	say := testutil.Expect[*serverpackets.LobbySay](bob, expectLimit)
	assert.Equal(t, "Liisa", say.Username)
	assert.Equal(t, "moi", say.Message)

	bob.Send(&clientpackets.LobbySayP{D: bob.NextNum(), Destination: "Liisa", Message: "no moi"})
	sayp := testutil.Expect[*serverpackets.LobbySayP](alice, expectLimit)
	assert.Equal(t, "Pekka", sayp.From)
	assert.Equal(t, "no moi", sayp.Message)

	// A profane line bounces off the filter; the sender hears from the
	// sheriff instead of the lobby.
	alice.Send(&clientpackets.LobbySay{D: alice.NextNum(), LobbyTab: "-", Message: "paska"})
	testutil.Expect[*serverpackets.LobbySheriffSay](alice, expectLimit)
}

func TestServer_LobbyPartOnDisconnect(t *testing.T) {
	addr := startServer(t)

	alice := testutil.DialGolf(t, addr)
	alice.Login("Liisa")
	joinLobby(t, alice, protocol.LobbySolo)

	bob := testutil.DialGolf(t, addr)
	bob.Login("Pekka")
	joinLobby(t, bob, protocol.LobbySolo)
	testutil.Expect[*serverpackets.LobbyJoin](alice, expectLimit)

	bob.Close()

	part := testutil.Expect[*serverpackets.LobbyPart](alice, expectLimit)
	assert.Equal(t, "Pekka", part.Name)
	assert.Equal(t, protocol.ReasonLostConnection, part.Reason.Code)
}

func TestServer_SoloGame(t *testing.T) {
	addr := startServer(t)

	gc := testutil.DialGolf(t, addr)
	gc.Login("")

	gc.Send(&clientpackets.LobbySelectCspt{
		D:         gc.NextNum(),
		NumTracks: 2,
		TrackType: protocol.TrackAll,
	})
	testutil.Expect[*serverpackets.StatusGame](gc, expectLimit)
	info := testutil.Expect[*serverpackets.GameGameInfo](gc, expectLimit)
	assert.Equal(t, 1, info.Players)
	testutil.Expect[*serverpackets.GameOwnInfo](gc, expectLimit)

	// Next tick fills the one-seat room and play starts on track one.
	testutil.Expect[*serverpackets.GameStart](gc, expectLimit)
	testutil.Expect[*serverpackets.GameStartTrack](gc, expectLimit)
	turn := testutil.Expect[*serverpackets.GameStartTurn](gc, expectLimit)
	assert.Equal(t, 0, turn.Index)

	gc.Send(&clientpackets.GameSkip{D: gc.NextNum()})
	testutil.Expect[*serverpackets.GameResetVoteSkip](gc, expectLimit)
	testutil.Expect[*serverpackets.GameStartTrack](gc, expectLimit)
	testutil.Expect[*serverpackets.GameStartTurn](gc, expectLimit)

	gc.Send(&clientpackets.GameSkip{D: gc.NextNum()})
	end := testutil.Expect[*serverpackets.GameEnd](gc, expectLimit)
	assert.Equal(t, []int{1}, end.Winners)
}

func TestServer_MultiGameFlow(t *testing.T) {
	addr := startServer(t)

	host := testutil.DialGolf(t, addr)
	host.Login("Liisa")
	joinLobby(t, host, protocol.LobbyMulti)

	guest := testutil.DialGolf(t, addr)
	guest.Login("Pekka")
	joinLobby(t, guest, protocol.LobbyMulti)

	host.Send(&clientpackets.LobbyCmpt{
		D:          host.NextNum(),
		GameName:   "testi",
		Password:   "-",
		MaxPlayers: 2,
		NumTracks:  1,
		TrackType:  protocol.TrackAll,
		MaxStrokes: 20,
		TimeLimit:  60,
		Collision:  protocol.CollisionOn,
	})
	testutil.Expect[*serverpackets.StatusGame](host, expectLimit)
	testutil.Expect[*serverpackets.GameOwnInfo](host, expectLimit)

	added := testutil.Expect[*serverpackets.LobbyGamelistAdd](guest, expectLimit)
	assert.Equal(t, "testi", added.Game.Name)
	assert.Equal(t, 1, added.Game.NumPlayers)

	guest.Send(&clientpackets.LobbyJmpt{D: guest.NextNum(), NetworkID: added.Game.ID})
	testutil.Expect[*serverpackets.StatusGame](guest, expectLimit)
	own := testutil.Expect[*serverpackets.GameOwnInfo](guest, expectLimit)
	assert.Equal(t, 1, own.Index)

	joined := testutil.Expect[*serverpackets.GameJoin](host, expectLimit)
	assert.Equal(t, "Pekka", joined.Name)

	// Both seats taken: the sweep starts the game.
	for _, gc := range []*testutil.GolfClient{host, guest} {
		testutil.Expect[*serverpackets.GameStart](gc, expectLimit)
		testutil.Expect[*serverpackets.GameStartTrack](gc, expectLimit)
		turn := testutil.Expect[*serverpackets.GameStartTurn](gc, expectLimit)
		assert.Equal(t, 0, turn.Index)
	}

	host.Send(&clientpackets.GameBeginStroke{D: host.NextNum(), Coords: "70q4"})
	stroke := testutil.Expect[*serverpackets.GameBeginStroke](guest, expectLimit)
	assert.Equal(t, 0, stroke.Index)
	assert.Equal(t, "70q4", stroke.Coords)

	host.Send(&clientpackets.GameEndStroke{D: host.NextNum(), Index: 0, InHole: "ff"})
	guest.Send(&clientpackets.GameEndStroke{D: guest.NextNum(), Index: 0, InHole: "ff"})
	for _, gc := range []*testutil.GolfClient{host, guest} {
		turn := testutil.Expect[*serverpackets.GameStartTurn](gc, expectLimit)
		assert.Equal(t, 1, turn.Index)
	}

	// Unanimous skip on the last track ends the game.
	host.Send(&clientpackets.GameVoteSkip{D: host.NextNum()})
	guest.Send(&clientpackets.GameVoteSkip{D: guest.NextNum()})
	for _, gc := range []*testutil.GolfClient{host, guest} {
		end := testutil.Expect[*serverpackets.GameEnd](gc, expectLimit)
		assert.Equal(t, []int{1}, end.Winners)
	}
}

func TestServer_ChallengeFlow(t *testing.T) {
	addr := startServer(t)

	alice := testutil.DialGolf(t, addr)
	alice.Login("Liisa")
	joinLobby(t, alice, protocol.LobbyDuo)

	bob := testutil.DialGolf(t, addr)
	bob.Login("Pekka")
	joinLobby(t, bob, protocol.LobbyDuo)

	alice.Send(&clientpackets.LobbyChallenge{
		D:          alice.NextNum(),
		Challenged: "Pekka",
		NumTracks:  1,
		TrackType:  protocol.TrackAll,
		MaxStrokes: 20,
		TimeLimit:  60,
		Collision:  protocol.CollisionOn,
	})
	challenge := testutil.Expect[*serverpackets.LobbyChallenge](bob, expectLimit)
	require.Equal(t, "Liisa", challenge.Challenger)

	bob.Send(&clientpackets.LobbyAccept{D: bob.NextNum(), Challenger: "Liisa"})
	for _, gc := range []*testutil.GolfClient{alice, bob} {
		testutil.Expect[*serverpackets.StatusGame](gc, expectLimit)
		testutil.Expect[*serverpackets.GameOwnInfo](gc, expectLimit)
		testutil.Expect[*serverpackets.GameStart](gc, expectLimit)
	}
}

func TestServer_ChallengeUnknownUser(t *testing.T) {
	addr := startServer(t)

	alice := testutil.DialGolf(t, addr)
	alice.Login("Liisa")
	joinLobby(t, alice, protocol.LobbyDuo)

	alice.Send(&clientpackets.LobbyChallenge{
		D:          alice.NextNum(),
		Challenged: "EiKetaan",
		NumTracks:  1,
	})
	fail := testutil.Expect[*serverpackets.LobbyCFail](alice, expectLimit)
	assert.Equal(t, protocol.ChallengeNoUser, fail.Reason)
}

func TestServer_PingPong(t *testing.T) {
	t.Parallel()

	addr := startServer(t)

	gc := testutil.DialGolf(t, addr)
	gc.Login("")

	// The first ping round arrives within the five second cadence; the
	// pong keeps the client registered past the reap check.
	deadline := time.Now().Add(7 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := gc.TryReadPacket(200 * time.Millisecond); ok {
			gc.Send(&clientpackets.Pong{})
			return
		}
	}
	t.Fatal("no ping within the broadcast cadence")
}
