// Package world holds the live player registry and the per-client state the
// tick loop works on. Everything here except the explicitly atomic pieces is
// owned by the tick goroutine.
package world

import "sync/atomic"

// ClientID is a registry slot index. Slots are reused, so an id is only
// meaningful while the client it was handed out for is still registered.
type ClientID int

// NetworkID is the public id a client is introduced with in "c id". Unlike
// ClientID it is never reused.
type NetworkID int

// GameID is a room arena index, reused like ClientID.
type GameID int

// NoGame marks a client that is not seated in any room.
const NoGame GameID = -1

// IDGenerator hands out NetworkIDs starting from 1.
type IDGenerator struct {
	next atomic.Int64
}

// NewIDGenerator returns a generator whose first Next is 1.
func NewIDGenerator() *IDGenerator {
	g := &IDGenerator{}
	g.next.Store(1)
	return g
}

// Next returns the next free id. Safe for concurrent use.
func (g *IDGenerator) Next() NetworkID {
	return NetworkID(g.next.Add(1) - 1)
}
