package constants

import "time"

// Playforia Minigolf Protocol Constants
//
// This file contains all protocol-level constants for the Playray/Playforia
// minigolf backend. The values are fixed by the original game client; the
// server must reproduce them exactly or the client disconnects.

// Handshake Constants
const (
	// ClientVersion is the sole game client version the server accepts.
	// Any other value in the version packet is answered with vernotok.
	ClientVersion = 35

	// HandshakeCrt is the fixed payload of the "c crt" handshake line.
	HandshakeCrt = 250

	// LobbySelectStatus is the status code the client expects in
	// "status lobbyselect" when returned to the lobby selection screen.
	LobbySelectStatus = 300

	// SeedMin and SeedMax bound the connection cipher seed announced in
	// "c io <seed>". The client parses it as a positive 9-digit int.
	SeedMin = 100000000
	SeedMax = 999999999

	// AnonymousNameLimit bounds the random suffix of generated guest
	// names ("~anonym-<n>", n in [0, AnonymousNameLimit)).
	AnonymousNameLimit = 10000
)

// Timing Constants
const (
	// TicksPerSecond is the fixed simulation rate of the tick loop.
	TicksPerSecond = 5

	// TickInterval is the wall-clock budget of a single tick.
	TickInterval = time.Second / TicksPerSecond

	// PingInterval is how often the server broadcasts "c ping".
	PingInterval = 5 * time.Second

	// PongTimeout is how long a client may lag behind the last ping
	// before it is reaped as dead.
	PongTimeout = 5 * time.Second

	// ReadTimeout is the per-read idle deadline on client sockets.
	ReadTimeout = 10 * time.Second
)

// Buffer and Queue Constants
const (
	// ReadChunkSize is the socket read buffer size. The original client
	// never sends lines anywhere near this long.
	ReadChunkSize = 512

	// InboundQueueSize bounds the per-connection parsed-packet queue
	// between the reader goroutine and the tick loop.
	InboundQueueSize = 32

	// HandoffQueueSize bounds the authenticated-player handoff queue
	// between connection handlers and the tick loop.
	HandoffQueueSize = 4
)

// Placeholder Constants
//
// Values the client displays but the server does not compute. Both come
// straight from the original backend's captures.
const (
	// RankPlaceholder is the ranking sent for every player.
	RankPlaceholder = 999

	// GamelistUnused is the constant filler field of gamelist records.
	GamelistUnused = 1337
)
