package serverpackets

import (
	"fmt"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// parsers holds every server packet parser in match order. GameGameInfo
// sits first so "game\tgameinfo" is not swallowed by GameGame, which for
// the same reason sits at the very end together with GameStart.
var parsers = []func(*protocol.Reader) (protocol.Packet, error){
	parseGameGameInfo,
	parseH,
	parseVersion,
	parseKickBan,
	parseIo,
	parseCrt,
	parseCtr,
	parseId,
	parsePing,
	parseRcok,
	parseRcf,
	parseVersOk,
	parseError,
	parseBasicInfo,
	parseBroadcast,
	parseGamePlayers,
	parseGameOwnInfo,
	parseGameScoringMulti,
	parseGameCr,
	parseGameChangeScore,
	parseGameVoteSkip,
	parseGamePart,
	parseGameRfng,
	parseGameResetVoteSkip,
	parseGameEnd,
	parseGameSay,
	parseGameJoin,
	parseGameStartTrack,
	parseGameStartTurn,
	parseGameBeginStroke,
	parseStatusLogin,
	parseStatusGame,
	parseStatusLobby,
	parseStatusLobbySelect,
	parseLobbyTrackSetlist,
	parseLobbyNumberOfUsers,
	parseLobbyOwnJoin,
	parseLobbyJoinFromGame,
	parseLobbyJoin,
	parseLobbyCFail,
	parseLobbyAFail,
	parseLobbyCancel,
	parseLobbyNC,
	parseLobbyChallenge,
	parseLobbySheriffSay,
	parseLobbySay,
	parseLobbySayP,
	parseLobbyGsn,
	parseLobbyUsers,
	parseLobbyPart,
	parseLobbyGamelistFull,
	parseLobbyGamelistRemove,
	parseLobbyGamelistChange,
	parseLobbyGamelistAdd,
	parseLobbySelectNop,
	parseLobbySelectLobby,
	parseGameGame,
	parseGameStart,
}

// Parse decodes one server line. It tries every packet in match order
// and returns the first that fits along with any unconsumed input.
func Parse(line string) (protocol.Packet, string, error) {
	for _, parse := range parsers {
		r := protocol.NewReader(line)
		pkt, err := parse(&r)
		if err == nil {
			return pkt, r.Rest(), nil
		}
	}
	return nil, line, fmt.Errorf("no server packet matches %q", line)
}
