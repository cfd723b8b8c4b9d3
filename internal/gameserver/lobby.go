package gameserver

import (
	"log/slog"

	"github.com/Nokkasiili/minigolf-server/internal/constants"
	"github.com/Nokkasiili/minigolf-server/internal/filter"
	"github.com/Nokkasiili/minigolf-server/internal/game"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
	"github.com/Nokkasiili/minigolf-server/internal/world"
)

// trainingSetlist is the one track set the server can offer until sets are
// stored somewhere.
var trainingSetlist = serverpackets.Tracklist{
	Name:            "Training",
	Difficulty:      protocol.DifficultyEasy,
	Tracks:          1,
	AllTimeBestName: "-",
	MonthBestName:   "-",
	WeekBestName:    "-",
	DayBestName:     "-",
}

// handleSingle covers packets only the solo lobbies send.
func (s *Server) handleSingle(c *world.Client, pkt protocol.Packet) {
	switch pkt.(type) {
	case *clientpackets.LobbyTrackSetlist:
		c.Send(&serverpackets.LobbyTrackSetlist{
			D:       c.NextNum(),
			Setlist: []serverpackets.Tracklist{trainingSetlist},
		})
	case *clientpackets.LobbyCspc:
		// Track set choice. There is only one set, nothing to record.
	}
}

// handleDual covers the duo lobby's challenge dance.
func (s *Server) handleDual(c *world.Client, pkt protocol.Packet) {
	switch p := pkt.(type) {
	case *clientpackets.LobbyNc:
		c.SetNoChallenges(p.NoChallenges)
		lobby, _ := c.Lobby()
		s.clients.ForEachIdle(lobby, func(o *world.Client) {
			if o.ID() == c.ID() {
				return
			}
			o.Send(&serverpackets.LobbyNC{
				D:            o.NextNum(),
				Name:         c.Name(),
				NoChallenges: c.NoChallenges(),
			})
		})
	case *clientpackets.LobbyChallenge:
		challenged := s.clients.ByName(p.Challenged)
		if challenged == nil {
			c.Send(&serverpackets.LobbyCFail{D: c.NextNum(), Reason: protocol.ChallengeNoUser})
			return
		}
		roomID := s.rooms.CreateChallenge(p, c.Name())
		room := s.rooms.Get(roomID)
		if err := room.AddPlayer(c.ID()); err != nil {
			slog.Error("seating challenger", slog.Any("error", err))
			return
		}
		challenged.Send(&serverpackets.LobbyChallenge{
			D:          challenged.NextNum(),
			Challenger: c.Name(),
			NumTracks:  p.NumTracks,
			TrackType:  p.TrackType,
			MaxStrokes: p.MaxStrokes,
			TimeLimit:  p.TimeLimit,
			WaterEvent: p.WaterEvent,
			Collision:  p.Collision,
			Scoring:    p.Scoring,
			WeightEnd:  p.WeightEnd,
		})
	case *clientpackets.LobbyCFail:
		challenger := s.clients.ByName(p.Name)
		if challenger == nil {
			return
		}
		challenger.Send(&serverpackets.LobbyCFail{D: challenger.NextNum(), Reason: p.Reason})
		challenger.ClearGame()
		s.rooms.RemoveDuo(p.Name)
	case *clientpackets.LobbyCancel:
		if challenged := s.clients.ByName(p.Challenged); challenged != nil {
			challenged.Send(&serverpackets.LobbyCancel{D: challenged.NextNum()})
			challenged.ClearGame()
		}
		// The canceling client is the challenger, whose name keys the room.
		s.rooms.RemoveDuo(c.Name())
	case *clientpackets.LobbyAccept:
		challenger := s.clients.ByName(p.Challenger)
		if challenger == nil {
			return
		}
		roomID, room := s.rooms.FindDuo(c.Name(), p.Challenger)
		if room == nil {
			return
		}
		if err := room.AddPlayer(c.ID()); err != nil {
			slog.Debug("challenge already accepted",
				slog.String("name", c.Name()), slog.Any("error", err))
			return
		}
		challenger.SetGame(roomID)
		c.SetGame(roomID)
		s.gameJoin(c, room)
		s.gameJoin(challenger, room)
		lobby, _ := c.Lobby()
		s.clients.ForEachIdle(lobby, func(o *world.Client) {
			o.Send(&serverpackets.LobbyGsn{
				D:          o.NextNum(),
				Challenger: challenger.Name(),
				Challenged: c.Name(),
			})
		})
	}
}

// handleMulti covers creating and joining custom multiplayer rooms.
func (s *Server) handleMulti(c *world.Client, pkt protocol.Packet) {
	switch p := pkt.(type) {
	case *clientpackets.LobbyCmpt:
		roomID := s.rooms.CreateMulti(c.ID(), p)
		room := s.rooms.Get(roomID)
		c.SetGame(roomID)
		lobby, _ := c.Lobby()
		s.clients.ForEachIdle(lobby, func(o *world.Client) {
			o.Send(&serverpackets.LobbyPart{
				D:    o.NextNum(),
				Name: c.Name(),
				Reason: protocol.JoinLeaveReason{
					Code: protocol.ReasonCreatedGame,
					Game: room.Name(),
				},
			})
		})
		s.clients.ForEachIdle(protocol.LobbyMulti, func(o *world.Client) {
			o.Send(&serverpackets.LobbyGamelistAdd{D: o.NextNum(), Game: room.Summary()})
		})
		s.gameJoin(c, room)
	case *clientpackets.LobbyJmpt:
		if !c.InLobby(protocol.LobbyMulti) {
			return
		}
		roomID, room := s.rooms.ByNetworkID(world.NetworkID(p.NetworkID))
		if room == nil {
			return
		}
		if err := room.AddPlayer(c.ID()); err != nil {
			slog.Debug("join refused",
				slog.String("name", c.Name()), slog.Any("error", err))
			return
		}
		c.SetGame(roomID)
		s.gameJoin(c, room)
		s.gameChanged(roomID)
	}
}

// handleLobby covers the packets every lobby understands. It runs after
// the type-specific handler for the same packet.
func (s *Server) handleLobby(c *world.Client, pkt protocol.Packet) {
	switch p := pkt.(type) {
	case *clientpackets.LobbyCspt:
		s.createSolo(c, p)
	case *clientpackets.LobbyBack:
		c.Send(&serverpackets.StatusLobbySelect{
			D:     c.NextNum(),
			Lobby: constants.LobbySelectStatus,
		})
		lobby, ok := c.Lobby()
		c.ClearLobby()
		if !ok {
			return
		}
		s.clients.ForEachIdle(lobby, func(o *world.Client) {
			o.Send(&serverpackets.LobbyPart{
				D:      o.NextNum(),
				Name:   c.Name(),
				Reason: protocol.JoinLeaveReason{Code: protocol.ReasonLeftLobby},
			})
		})
	case *clientpackets.LobbySelect:
		s.onLobbyJoin(c, p.Lobby, fromLobby)
	case *clientpackets.LobbySay:
		s.lobbySay(c, p)
	case *clientpackets.LobbySayP:
		s.lobbySayP(c, p)
	case *clientpackets.LobbyQuit:
		c.Disconnect()
	case *clientpackets.LobbySelectSelect:
		s.onLobbyJoin(c, p.Lobby, fromLobbySelect)
	}
}

// createSolo opens a practice room and walks the creator in.
func (s *Server) createSolo(c *world.Client, p *clientpackets.LobbyCspt) {
	roomID := s.rooms.CreateSolo(c.ID(), p)
	c.SetGame(roomID)
	s.gameJoin(c, s.rooms.Get(roomID))
}

// allowSay screens a chat message. A profane one is dropped and the sender
// gets told off by the sheriff instead.
func (s *Server) allowSay(c *world.Client, message string) bool {
	if !filter.ContainsBadWords(filter.Filter(message)) {
		return true
	}
	slog.Debug("chat message suppressed", slog.String("name", c.Name()))
	c.Send(&serverpackets.LobbySheriffSay{D: c.NextNum(), Message: "watch your language"})
	return false
}

// lobbySay relays lobby chat to everyone else in the lobby, players midgame
// included.
func (s *Server) lobbySay(c *world.Client, p *clientpackets.LobbySay) {
	lobby, ok := c.Lobby()
	if !ok {
		return
	}
	if !s.allowSay(c, p.Message) {
		return
	}
	s.clients.ForEachLobby(lobby, func(o *world.Client) {
		if o.ID() == c.ID() {
			return
		}
		o.Send(&serverpackets.LobbySay{
			D:           o.NextNum(),
			Destination: p.LobbyTab,
			Username:    c.Name(),
			Message:     p.Message,
		})
	})
}

// lobbySayP relays a private message to the named player. An unknown name
// is dropped without a reply, matching what clients expect.
func (s *Server) lobbySayP(c *world.Client, p *clientpackets.LobbySayP) {
	if !s.allowSay(c, p.Message) {
		return
	}
	dest := s.clients.ByName(p.Destination)
	if dest == nil {
		return
	}
	dest.Send(&serverpackets.LobbySayP{
		D:       dest.NextNum(),
		From:    c.Name(),
		Message: p.Message,
	})
}

// joinOrigin is where a client came from when it entered a lobby. Parting
// broadcasts and the join packet flavor depend on it.
type joinOrigin int

const (
	fromLobbySelect joinOrigin = iota
	fromLobby
	fromGame
)

// onLobbyJoin walks a client into a lobby: status, census, user list, own
// listing, then the rest of the lobby hears about it. Incognito players
// get the status line and nothing else.
func (s *Server) onLobbyJoin(c *world.Client, lobby protocol.LobbyType, origin joinOrigin) {
	slog.Debug("joining lobby",
		slog.String("name", c.Name()), slog.String("lobby", lobby.String()))
	c.Send(&serverpackets.StatusLobby{D: c.NextNum(), Lobby: lobby})

	lastLobby, hadLobby := c.Lobby()
	c.SetLobby(lobby)

	if lobby != protocol.LobbySoloIncognito {
		n := s.clients.CountSplit()
		c.Send(&serverpackets.LobbyNumberOfUsers{
			D:             c.NextNum(),
			SingleLobby:   n.SoloLobby,
			SinglePlaying: n.SoloPlaying,
			DualLobby:     n.DuoLobby,
			DualPlaying:   n.DuoPlaying,
			MultiLobby:    n.MultiLobby,
			MultiPlaying:  n.MultiPlaying,
		})
		c.Send(&serverpackets.LobbyUsers{
			D:     c.NextNum(),
			Users: s.clients.LobbyUserlist(c.ID(), lobby),
		})
		c.Send(&serverpackets.LobbyOwnJoin{D: c.NextNum(), OwnInfo: c.User()})

		s.clients.ForEach(func(o *world.Client) {
			if o.ID() == c.ID() {
				return
			}
			if o.InLobby(lobby) {
				if origin == fromGame {
					o.Send(&serverpackets.LobbyJoinFromGame{D: o.NextNum(), User: c.User()})
				} else {
					o.Send(&serverpackets.LobbyJoin{D: o.NextNum(), User: c.User()})
				}
			}
			if origin == fromLobby && hadLobby && o.InLobby(lastLobby) {
				o.Send(&serverpackets.LobbyPart{
					D:      o.NextNum(),
					Name:   c.Name(),
					Reason: protocol.JoinLeaveReason{Code: protocol.ReasonLeftLobby},
				})
			}
		})
	}

	if lobby == protocol.LobbyMulti {
		count, games := s.rooms.GameList()
		c.Send(&serverpackets.LobbyGamelistFull{D: c.NextNum(), Len: count, Games: games})
	}
}

// gameJoin walks a seated client into its room: game status, room info,
// who is already there, then the client's own seat. Multiplayer rooms also
// tell the sitting players about the newcomer.
func (s *Server) gameJoin(c *world.Client, room *game.Room) {
	c.Send(&serverpackets.StatusGame{D: c.NextNum()})

	index, ok := room.SeatIndex(c.ID())
	if !ok {
		slog.Error("game join without a seat", slog.String("name", c.Name()))
		return
	}
	c.Send(room.Info(c.NextNum()))

	var players []serverpackets.Player
	for i, seat := range room.Seats() {
		if seat.ID == c.ID() {
			continue
		}
		other := s.clients.Get(seat.ID)
		if other == nil {
			continue
		}
		players = append(players, serverpackets.Player{
			Index: i,
			Name:  other.Name(),
			Clan:  other.Clan(),
		})
		if room.Type() == protocol.LobbyMulti {
			other.Send(&serverpackets.GameJoin{
				D:     other.NextNum(),
				Index: index,
				Name:  c.Name(),
				Clan:  c.Clan(),
			})
		}
	}
	c.Send(&serverpackets.GamePlayers{D: c.NextNum(), Players: players})
	c.Send(&serverpackets.GameOwnInfo{
		D:     c.NextNum(),
		Index: index,
		Name:  c.Name(),
		Clan:  c.Clan(),
	})
}

// gameChanged refreshes the room's gamelist entry for everyone browsing
// the matching lobby.
func (s *Server) gameChanged(id world.GameID) {
	room := s.rooms.Get(id)
	if room == nil {
		return
	}
	s.clients.ForEachIdle(room.Type(), func(o *world.Client) {
		o.Send(&serverpackets.LobbyGamelistChange{D: o.NextNum(), Game: room.Summary()})
	})
}
