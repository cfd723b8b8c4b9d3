package protocol

import (
	"fmt"
	"strconv"
)

// LobbyType identifies one of the three lobbies. The single lobby has a
// hidden variant used by clients that do not want to be listed.
type LobbyType int

const (
	LobbySolo LobbyType = iota
	LobbySoloIncognito
	LobbyDuo
	LobbyMulti
)

// ParseLobbyType decodes a lobby type field.
func ParseLobbyType(s string) (LobbyType, error) {
	switch s {
	case "1":
		return LobbySolo, nil
	case "1h":
		return LobbySoloIncognito, nil
	case "2":
		return LobbyDuo, nil
	case "x":
		return LobbyMulti, nil
	}
	return 0, fmt.Errorf("bad lobby type %q", s)
}

func (t LobbyType) String() string {
	switch t {
	case LobbySolo:
		return "1"
	case LobbySoloIncognito:
		return "1h"
	case LobbyDuo:
		return "2"
	case LobbyMulti:
		return "x"
	}
	return "?"
}

// LoginType selects the authentication flow: nr for guests, reg for
// registered accounts, ttm for track test mode.
type LoginType int

const (
	LoginNr LoginType = iota
	LoginReg
	LoginTtm
)

// ParseLoginType decodes a login type field.
func ParseLoginType(s string) (LoginType, error) {
	switch s {
	case "nr":
		return LoginNr, nil
	case "reg":
		return LoginReg, nil
	case "ttm":
		return LoginTtm, nil
	}
	return 0, fmt.Errorf("bad login type %q", s)
}

func (t LoginType) String() string {
	switch t {
	case LoginNr:
		return "nr"
	case LoginReg:
		return "reg"
	case LoginTtm:
		return "ttm"
	}
	return "?"
}

// LoginStatus reports the outcome of a login attempt. The zero value means
// the login succeeded and is omitted from the wire line.
type LoginStatus int

const (
	LoginOK LoginStatus = iota
	LoginNickInUse
	LoginRlf
	LoginInvalidNick
	LoginForbiddenNick
)

// ParseLoginStatus decodes a login failure field.
func ParseLoginStatus(s string) (LoginStatus, error) {
	switch s {
	case "nickinuse":
		return LoginNickInUse, nil
	case "rlf":
		return LoginRlf, nil
	case "invalidnick":
		return LoginInvalidNick, nil
	case "forbiddennick":
		return LoginForbiddenNick, nil
	}
	return 0, fmt.Errorf("bad login status %q", s)
}

func (s LoginStatus) String() string {
	switch s {
	case LoginNickInUse:
		return "nickinuse"
	case LoginRlf:
		return "rlf"
	case LoginInvalidNick:
		return "invalidnick"
	case LoginForbiddenNick:
		return "forbiddennick"
	}
	return "?"
}

// ChallengeFail explains why a duo challenge did not go through.
type ChallengeFail int

const (
	ChallengeRefuse ChallengeFail = iota
	ChallengeNoChall
	ChallengeCByOther
	ChallengeNoUser
	ChallengeCOther
)

// ParseChallengeFail decodes a challenge failure field.
func ParseChallengeFail(s string) (ChallengeFail, error) {
	switch s {
	case "refuse":
		return ChallengeRefuse, nil
	case "nochall":
		return ChallengeNoChall, nil
	case "cbyother":
		return ChallengeCByOther, nil
	case "nouser":
		return ChallengeNoUser, nil
	case "cother":
		return ChallengeCOther, nil
	}
	return 0, fmt.Errorf("bad challenge fail %q", s)
}

func (f ChallengeFail) String() string {
	switch f {
	case ChallengeRefuse:
		return "refuse"
	case ChallengeNoChall:
		return "nochall"
	case ChallengeCByOther:
		return "cbyother"
	case ChallengeNoUser:
		return "nouser"
	case ChallengeCOther:
		return "cother"
	}
	return "?"
}

// ErrorType is the reason carried by the error packet.
type ErrorType int

const (
	ErrorVerNotOk ErrorType = iota
	ErrorServerFull
)

// ParseErrorType decodes an error reason field.
func ParseErrorType(s string) (ErrorType, error) {
	switch s {
	case "vernotok":
		return ErrorVerNotOk, nil
	case "serverfull":
		return ErrorServerFull, nil
	}
	return 0, fmt.Errorf("bad error type %q", s)
}

func (e ErrorType) String() string {
	switch e {
	case ErrorVerNotOk:
		return "vernotok"
	case ErrorServerFull:
		return "serverfull"
	}
	return "?"
}

// KickStyle tells the client how it is being removed.
type KickStyle int

const (
	KickNow KickStyle = iota + 1
	KickBanNow
	BanInit
	TooManyIPInit
)

// ParseKickStyle decodes a kick style field.
func ParseKickStyle(s string) (KickStyle, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(KickNow) || n > int(TooManyIPInit) {
		return 0, fmt.Errorf("bad kick style %q", s)
	}
	return KickStyle(n), nil
}

func (k KickStyle) String() string { return strconv.Itoa(int(k)) }

// The numeric track settings below travel as small decimal fields. Parsing
// rejects values outside the declared range.

// WaterEvent selects what happens to a ball in water.
type WaterEvent int

const (
	WaterBackToStart WaterEvent = iota
	WaterStayOnShore
)

// Difficulty grades a track set.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

// WeightEnd biases track scoring toward the final tracks.
type WeightEnd int

const (
	WeightNone WeightEnd = iota
	WeightLittle
	WeightPlenty
)

// Scoring selects stroke scoring or per-track scoring.
type Scoring int

const (
	ScoringScore Scoring = iota
	ScoringTrack
)

// Collision switches ball collisions on multiplayer tracks.
type Collision int

const (
	CollisionOff Collision = iota
	CollisionOn
)

// TrackType restricts which track categories a game draws from.
type TrackType int

const (
	TrackAll TrackType = iota
	TrackBasic
	TrackTraditional
	TrackModern
	TrackHoleInOne
	TrackShort
	TrackLong
)

func parseRanged(s, name string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("bad %s %q", name, s)
	}
	return n, nil
}

// ParseWaterEvent decodes a water event field.
func ParseWaterEvent(s string) (WaterEvent, error) {
	n, err := parseRanged(s, "water event", 0, 1)
	return WaterEvent(n), err
}

// ParseDifficulty decodes a difficulty field.
func ParseDifficulty(s string) (Difficulty, error) {
	n, err := parseRanged(s, "difficulty", 1, 3)
	return Difficulty(n), err
}

// ParseWeightEnd decodes an end-weighting field.
func ParseWeightEnd(s string) (WeightEnd, error) {
	n, err := parseRanged(s, "end weighting", 0, 2)
	return WeightEnd(n), err
}

// ParseScoring decodes a scoring mode field.
func ParseScoring(s string) (Scoring, error) {
	n, err := parseRanged(s, "scoring", 0, 1)
	return Scoring(n), err
}

// ParseCollision decodes a collision mode field.
func ParseCollision(s string) (Collision, error) {
	n, err := parseRanged(s, "collision", 0, 1)
	return Collision(n), err
}

// ParseTrackType decodes a track type field.
func ParseTrackType(s string) (TrackType, error) {
	n, err := parseRanged(s, "track type", 0, 6)
	return TrackType(n), err
}

func (v WaterEvent) String() string { return strconv.Itoa(int(v)) }
func (v Difficulty) String() string { return strconv.Itoa(int(v)) }
func (v WeightEnd) String() string  { return strconv.Itoa(int(v)) }
func (v Scoring) String() string    { return strconv.Itoa(int(v)) }
func (v Collision) String() string  { return strconv.Itoa(int(v)) }
func (v TrackType) String() string  { return strconv.Itoa(int(v)) }

// Tab-consuming enum reads for packet parsers. Every enum field on the wire
// is tab-prefixed.

func (r *Reader) TabLobbyType() (LobbyType, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseLobbyType(r.Field())
}

func (r *Reader) TabLoginType() (LoginType, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseLoginType(r.Field())
}

func (r *Reader) TabChallengeFail() (ChallengeFail, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseChallengeFail(r.Field())
}

func (r *Reader) TabErrorType() (ErrorType, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseErrorType(r.Field())
}

func (r *Reader) TabKickStyle() (KickStyle, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseKickStyle(r.Field())
}

func (r *Reader) TabWaterEvent() (WaterEvent, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseWaterEvent(r.Field())
}

func (r *Reader) TabDifficulty() (Difficulty, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseDifficulty(r.Field())
}

func (r *Reader) TabWeightEnd() (WeightEnd, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseWeightEnd(r.Field())
}

func (r *Reader) TabScoring() (Scoring, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseScoring(r.Field())
}

func (r *Reader) TabCollision() (Collision, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseCollision(r.Field())
}

func (r *Reader) TabTrackType() (TrackType, error) {
	if err := r.Tab(); err != nil {
		return 0, err
	}
	return ParseTrackType(r.Field())
}

// JoinLeaveReason explains a lobby part. Reasons 2 and 3 name the game the
// player moved to.
type JoinLeaveReason struct {
	Code int
	Game string
}

// Lobby part reason codes.
const (
	ReasonStartedSolo    = 1
	ReasonCreatedGame    = 2
	ReasonJoinedGame     = 3
	ReasonLeftLobby      = 4
	ReasonLostConnection = 5
)

// ParseJoinLeaveReason decodes a part reason, consuming the game name field
// for the reasons that carry one.
func ParseJoinLeaveReason(r *Reader) (JoinLeaveReason, error) {
	code, err := r.Int()
	if err != nil {
		return JoinLeaveReason{}, err
	}
	switch code {
	case ReasonStartedSolo, ReasonLeftLobby, ReasonLostConnection:
		return JoinLeaveReason{Code: code}, nil
	case ReasonCreatedGame, ReasonJoinedGame:
		if err := r.Tab(); err != nil {
			return JoinLeaveReason{}, err
		}
		return JoinLeaveReason{Code: code, Game: r.Field()}, nil
	}
	return JoinLeaveReason{}, fmt.Errorf("bad part reason %d", code)
}

func (j JoinLeaveReason) String() string {
	switch j.Code {
	case ReasonCreatedGame, ReasonJoinedGame:
		return strconv.Itoa(j.Code) + "\t" + j.Game
	}
	return strconv.Itoa(j.Code)
}

// PlayerInfo is a per-player flag vector written as one character per
// player. The wire flips the sense: 'f' marks a set flag.
type PlayerInfo []bool

// ParsePlayerInfo decodes a flag vector field.
func ParsePlayerInfo(s string) (PlayerInfo, error) {
	out := make(PlayerInfo, 0, len(s))
	for _, c := range s {
		switch c {
		case 'f':
			out = append(out, true)
		case 't':
			out = append(out, false)
		default:
			return nil, fmt.Errorf("bad player info %q", s)
		}
	}
	return out, nil
}

func (p PlayerInfo) String() string {
	b := make([]byte, len(p))
	for i, v := range p {
		if v {
			b[i] = 'f'
		} else {
			b[i] = 't'
		}
	}
	return string(b)
}
