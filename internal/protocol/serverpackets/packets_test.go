package serverpackets

import (
	"testing"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

func roundTrip(t *testing.T, line string) protocol.Packet {
	t.Helper()
	pkt, rest, err := Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	if rest != "" {
		t.Fatalf("Parse(%q): rest %q", line, rest)
	}
	if got := pkt.Write(); got != line {
		t.Fatalf("Write() = %q, want %q", got, line)
	}
	return pkt
}

func TestParseGameInfo(t *testing.T) {
	pkt := roundTrip(t, "d 9 game\tgameinfo\t-\tf\t13\t3\t10\t1\t20\t60\t0\t1\t0\t0\tf\n")
	p, ok := pkt.(*GameGameInfo)
	if !ok {
		t.Fatalf("got %T, want *GameGameInfo", pkt)
	}
	if p.Name != "-" || p.Passworded || p.Permission != 13 || p.Players != 3 {
		t.Fatalf("got %+v", p)
	}
	if p.NumTracks != 10 || p.TrackType != protocol.TrackBasic || p.MaxStrokes != 20 || p.StrokeTime != 60 {
		t.Fatalf("got %+v", p)
	}
	if p.WaterEvent != protocol.WaterBackToStart || p.Collision != protocol.CollisionOn {
		t.Fatalf("got %+v", p)
	}
}

func TestGameInfoTailFallsToGame(t *testing.T) {
	pkt, rest, err := Parse("d 9 game\tgameinfo\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := pkt.(*GameGame); !ok {
		t.Fatalf("got %T, want *GameGame", pkt)
	}
	if rest != "info\n" {
		t.Fatalf("rest = %q, want %q", rest, "info\n")
	}
}

func TestParseSayP(t *testing.T) {
	pkt := roundTrip(t, "d 5 lobby\tsayp\tNokkasiili\tlol lol lol\n")
	p, ok := pkt.(*LobbySayP)
	if !ok {
		t.Fatalf("got %T, want *LobbySayP", pkt)
	}
	if p.From != "Nokkasiili" || p.Message != "lol lol lol" {
		t.Fatalf("got %+v", p)
	}
}

func TestParseLobbyUsers(t *testing.T) {
	line := "d 7 lobby\tusers\t3:~anonym-2893^wn^-1^de_DE^-^-" +
		"\t3:Benny11112222^r^10^de_DE^-^-\t3:Jomppppa^rn^146^fi_FI^-^-\n"
	pkt := roundTrip(t, line)
	p := pkt.(*LobbyUsers)
	if len(p.Users) != 3 {
		t.Fatalf("got %d users", len(p.Users))
	}
	u := p.Users[0]
	if u.Name != "3:~anonym-2893" || u.Flags != "wn" || u.Rank != -1 || u.Lang != "de_DE" {
		t.Fatalf("got %+v", u)
	}
	if p.Users[2].Rank != 146 {
		t.Fatalf("rank = %d", p.Users[2].Rank)
	}

	pkt = roundTrip(t, "d 7 lobby\tusers\n")
	if p := pkt.(*LobbyUsers); p.Users != nil {
		t.Fatalf("empty lobby got %v", p.Users)
	}
}

func TestParseGamePlayers(t *testing.T) {
	pkt := roundTrip(t, "d 2 game\tplayers\t0\tAlice\t-\t1\tBob\tkolo\n")
	p := pkt.(*GamePlayers)
	if len(p.Players) != 2 {
		t.Fatalf("got %d players", len(p.Players))
	}
	if p.Players[0] != (Player{Index: 0, Name: "Alice", Clan: "-"}) {
		t.Fatalf("got %+v", p.Players[0])
	}
	if p.Players[1] != (Player{Index: 1, Name: "Bob", Clan: "kolo"}) {
		t.Fatalf("got %+v", p.Players[1])
	}

	pkt = roundTrip(t, "d 2 game\tplayers\n")
	if p := pkt.(*GamePlayers); p.Players != nil {
		t.Fatalf("empty room got %v", p.Players)
	}
}

func TestParseGamelistFull(t *testing.T) {
	pkt := roundTrip(t, "d 4 lobby\tgamelist\tfull\t0\t\n")
	p := pkt.(*LobbyGamelistFull)
	if p.Len != 0 || p.Games != nil {
		t.Fatalf("got %+v", p)
	}

	line := "d 4 lobby\tgamelist\tfull\t1\t3\tkolo's game\tf\t0\t4\t0\t10\t0\t20\t60\t0\t1\t0\t0\t2\n"
	pkt = roundTrip(t, line)
	p = pkt.(*LobbyGamelistFull)
	if p.Len != 1 || len(p.Games) != 1 {
		t.Fatalf("got len=%d games=%d", p.Len, len(p.Games))
	}
	g := p.Games[0]
	if g.ID != 3 || g.Name != "kolo's game" || g.MaxPlayers != 4 || g.NumPlayers != 2 {
		t.Fatalf("got %+v", g)
	}
}

func TestParseGamelistChange(t *testing.T) {
	pkt := roundTrip(t, "d 11 lobby\tgamelist\tchange\t3\tkolo's game\tf\t0\t4\t0\t10\t0\t20\t60\t0\t1\t0\t0\t2\n")
	p := pkt.(*LobbyGamelistChange)
	if p.Game.ID != 3 || p.Game.NumPlayers != 2 {
		t.Fatalf("got %+v", p.Game)
	}
}

func TestParseTrackSetlist(t *testing.T) {
	pkt := roundTrip(t, "d 3 lobby\ttracksetlist\t\n")
	p := pkt.(*LobbyTrackSetlist)
	if p.Setlist != nil {
		t.Fatalf("got %v", p.Setlist)
	}

	line := "d 3 lobby\ttracksetlist\tTraining\t1\t18\tkolo\t31\tkolo\t33\tBenny\t35\tkolo\t40\n"
	pkt = roundTrip(t, line)
	p = pkt.(*LobbyTrackSetlist)
	if len(p.Setlist) != 1 {
		t.Fatalf("got %d entries", len(p.Setlist))
	}
	s := p.Setlist[0]
	if s.Name != "Training" || s.Difficulty != protocol.DifficultyEasy || s.Tracks != 18 {
		t.Fatalf("got %+v", s)
	}
	if s.WeekBestName != "Benny" || s.DayBestStrokes != 40 {
		t.Fatalf("got %+v", s)
	}
}

func TestParseStatusLogin(t *testing.T) {
	pkt := roundTrip(t, "d 1 status\tlogin\n")
	if p := pkt.(*StatusLogin); p.Status != protocol.LoginOK {
		t.Fatalf("status = %v", p.Status)
	}

	pkt = roundTrip(t, "d 1 status\tlogin\tforbiddennick\n")
	if p := pkt.(*StatusLogin); p.Status != protocol.LoginForbiddenNick {
		t.Fatalf("status = %v", p.Status)
	}
}

func TestStatusLobbyBeforeLobbySelect(t *testing.T) {
	pkt := roundTrip(t, "d 3 status\tlobby\tx\n")
	if p := pkt.(*StatusLobby); p.Lobby != protocol.LobbyMulti {
		t.Fatalf("lobby = %v", p.Lobby)
	}

	pkt = roundTrip(t, "d 3 status\tlobbyselect\t2\n")
	if p := pkt.(*StatusLobbySelect); p.Lobby != 2 {
		t.Fatalf("lobby = %d", p.Lobby)
	}
}

func TestParseControlLines(t *testing.T) {
	if p := roundTrip(t, "h 1\n").(*H); p.Value != 1 {
		t.Fatalf("h = %d", p.Value)
	}
	if p := roundTrip(t, "c io 40\n").(*Io); p.Seed != 40 {
		t.Fatalf("seed = %d", p.Seed)
	}
	if p := roundTrip(t, "c crt 250\n").(*Crt); p.Value != 250 {
		t.Fatalf("crt = %d", p.Value)
	}
	if _, ok := roundTrip(t, "c ctr\n").(*Ctr); !ok {
		t.Fatal("want *Ctr")
	}
	if p := roundTrip(t, "c id 0\n").(*Id); p.Value != 0 {
		t.Fatalf("id = %d", p.Value)
	}
	if p := roundTrip(t, "s\tTropical 1.2.6\n").(*Version); p.Value != "Tropical 1.2.6" {
		t.Fatalf("version = %q", p.Value)
	}
	if p := roundTrip(t, "p kickban\t2\n").(*KickBan); p.Style != protocol.KickBanNow {
		t.Fatalf("style = %v", p.Style)
	}
}

func TestParseLobbyPart(t *testing.T) {
	pkt := roundTrip(t, "d 17 lobby\tpart\tzocker666\t2\t#1583093\n")
	p := pkt.(*LobbyPart)
	if p.Name != "zocker666" {
		t.Fatalf("name = %q", p.Name)
	}
	if p.Reason.Code != protocol.ReasonCreatedGame || p.Reason.Game != "#1583093" {
		t.Fatalf("reason = %+v", p.Reason)
	}

	pkt = roundTrip(t, "d 18 lobby\tpart\tBenny\t4\n")
	if p := pkt.(*LobbyPart); p.Reason.Code != protocol.ReasonLeftLobby {
		t.Fatalf("reason = %+v", p.Reason)
	}
}

func TestParseStartTrack(t *testing.T) {
	pkt := roundTrip(t, "d 8 game\tstarttrack\ttt\t534\tV 1,f,1I3\tA 2,t,4B0\n")
	p := pkt.(*GameStartTrack)
	if p.Players != "tt" || p.Seed != 534 {
		t.Fatalf("got %+v", p)
	}
	if len(p.Tracks) != 2 || p.Tracks[0] != "V 1,f,1I3" || p.Tracks[1] != "A 2,t,4B0" {
		t.Fatalf("tracks = %q", p.Tracks)
	}
}

func TestParseGameEnd(t *testing.T) {
	pkt := roundTrip(t, "d 30 game\tend\t1\t-1\n")
	p := pkt.(*GameEnd)
	if len(p.Winners) != 2 || p.Winners[0] != 1 || p.Winners[1] != -1 {
		t.Fatalf("winners = %v", p.Winners)
	}
}

func TestParseBasicInfo(t *testing.T) {
	pkt := roundTrip(t, "d 2 basicinfo\tf\t0\tt\tt\n")
	p := pkt.(*BasicInfo)
	if p.UnconfirmedEmail || p.AccessLevel != 0 || !p.BadwordFilter || !p.GuestChat {
		t.Fatalf("got %+v", p)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, line := range []string{
		"zzz\n",
		"d 1 status\tnope\n",
		"",
	} {
		if _, _, err := Parse(line); err == nil {
			t.Fatalf("Parse(%q) accepted", line)
		}
	}
}
