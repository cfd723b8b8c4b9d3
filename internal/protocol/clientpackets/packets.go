package clientpackets

import (
	"fmt"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// parsers lists every client packet form. Order matters where one tag
// prefixes another: backtoprivate must come before back, and sayp before
// say, or the shorter form wins and leaves a tail.
var parsers = []func(*protocol.Reader) (protocol.Packet, error){
	parseVersion,
	parseLanguage,
	parseLoginType,
	parseLogin,
	parseTTLogin,
	parseLobbySelectRnop,
	parseLobbySelectCspt,
	parseLobbySelectQmpt,
	parseLobbySelectSelect,
	parseLobbySayP,
	parseLobbyAccept,
	parseLobbyCancel,
	parseLobbyCspt,
	parseLobbyBack,
	parseLobbySelect,
	parseLobbyChallenge,
	parseLobbyTrackSetlist,
	parseLobbyCmpt,
	parseLobbySay,
	parseLobbyCFail,
	parseLobbyNc,
	parseLobbyJmpt,
	parseLobbyCspc,
	parseLobbyQuit,
	parseGameRate,
	parseGameStartTurn,
	parseGameBeginStroke,
	parseGameEndStroke,
	parseGameBackToPrivate,
	parseGameRejectAccept,
	parseGameSkip,
	parseGameNewGame,
	parseGameVoteSkip,
	parseGameJoin,
	parseGameBack,
	parseGameSay,
	parseQuit,
	parseTLog,
	parseNew,
	parseOld,
	parsePong,
}

// Parse decodes one client line. It returns the packet and any unconsumed
// tail of the line.
func Parse(line string) (protocol.Packet, string, error) {
	for _, parse := range parsers {
		r := protocol.NewReader(line)
		pkt, err := parse(&r)
		if err != nil {
			continue
		}
		return pkt, r.Rest(), nil
	}
	return nil, line, fmt.Errorf("no client packet matches %q", line)
}
