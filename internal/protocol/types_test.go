package protocol

import "testing"

func TestLobbyTypeRoundTrip(t *testing.T) {
	for _, s := range []string{"1", "1h", "2", "x"} {
		v, err := ParseLobbyType(s)
		if err != nil {
			t.Fatalf("ParseLobbyType(%q) = %v", s, err)
		}
		if v.String() != s {
			t.Fatalf("LobbyType %q round trips to %q", s, v.String())
		}
	}
	if _, err := ParseLobbyType("3"); err == nil {
		t.Fatal("ParseLobbyType accepted 3")
	}
	if _, err := ParseLobbyType(""); err == nil {
		t.Fatal("ParseLobbyType accepted empty field")
	}
}

func TestWordEnums(t *testing.T) {
	if v, err := ParseLoginType("ttm"); err != nil || v != LoginTtm {
		t.Fatalf("ParseLoginType(ttm) = %v, %v", v, err)
	}
	if v, err := ParseLoginStatus("forbiddennick"); err != nil || v != LoginForbiddenNick {
		t.Fatalf("ParseLoginStatus = %v, %v", v, err)
	}
	if v, err := ParseChallengeFail("cbyother"); err != nil || v != ChallengeCByOther {
		t.Fatalf("ParseChallengeFail = %v, %v", v, err)
	}
	if v, err := ParseErrorType("serverfull"); err != nil || v != ErrorServerFull {
		t.Fatalf("ParseErrorType = %v, %v", v, err)
	}
	if LoginForbiddenNick.String() != "forbiddennick" {
		t.Fatalf("LoginForbiddenNick.String() = %q", LoginForbiddenNick.String())
	}
}

func TestNumericEnumRanges(t *testing.T) {
	if v, err := ParseTrackType("6"); err != nil || v != TrackLong {
		t.Fatalf("ParseTrackType(6) = %v, %v", v, err)
	}
	if _, err := ParseTrackType("7"); err == nil {
		t.Fatal("ParseTrackType accepted 7")
	}
	if _, err := ParseDifficulty("0"); err == nil {
		t.Fatal("ParseDifficulty accepted 0")
	}
	if v, err := ParseWaterEvent("1"); err != nil || v != WaterStayOnShore {
		t.Fatalf("ParseWaterEvent(1) = %v, %v", v, err)
	}
	if _, err := ParseCollision("2"); err == nil {
		t.Fatal("ParseCollision accepted 2")
	}
	if v, err := ParseKickStyle("4"); err != nil || v != TooManyIPInit {
		t.Fatalf("ParseKickStyle(4) = %v, %v", v, err)
	}
	if _, err := ParseKickStyle("5"); err == nil {
		t.Fatal("ParseKickStyle accepted 5")
	}
}

func TestJoinLeaveReason(t *testing.T) {
	r := NewReader("2\tkolo's game\n")
	j, err := ParseJoinLeaveReason(&r)
	if err != nil {
		t.Fatalf("ParseJoinLeaveReason = %v", err)
	}
	if j.Code != ReasonCreatedGame || j.Game != "kolo's game" {
		t.Fatalf("ParseJoinLeaveReason = %+v", j)
	}
	if j.String() != "2\tkolo's game" {
		t.Fatalf("String() = %q", j.String())
	}

	r = NewReader("4\n")
	j, err = ParseJoinLeaveReason(&r)
	if err != nil || j.Code != ReasonLeftLobby || j.Game != "" {
		t.Fatalf("ParseJoinLeaveReason(4) = %+v, %v", j, err)
	}
	if j.String() != "4" {
		t.Fatalf("String() = %q", j.String())
	}

	r = NewReader("6\n")
	if _, err := ParseJoinLeaveReason(&r); err == nil {
		t.Fatal("ParseJoinLeaveReason accepted 6")
	}
}

func TestPlayerInfo(t *testing.T) {
	p, err := ParsePlayerInfo("ftf")
	if err != nil {
		t.Fatalf("ParsePlayerInfo = %v", err)
	}
	if len(p) != 3 || !p[0] || p[1] || !p[2] {
		t.Fatalf("ParsePlayerInfo = %v", p)
	}
	if p.String() != "ftf" {
		t.Fatalf("String() = %q, want ftf", p.String())
	}
	if _, err := ParsePlayerInfo("fxt"); err == nil {
		t.Fatal("ParsePlayerInfo accepted fxt")
	}
}
