// Package protocol implements the line-oriented Playforia wire format:
// newline-terminated records with tab-separated fields. Sequenced packets
// carry a "d <num>" prefix whose number counts packets per direction.
package protocol

import "strconv"

// D is the sequence number of a "d" packet. Both directions number their
// packets independently, starting from zero.
type D uint32

// PacketNum returns the packet's sequence number.
func (d D) PacketNum() D { return d }

// String returns the decimal wire form.
func (d D) String() string { return strconv.FormatUint(uint64(d), 10) }

// Packet is one protocol line in either direction.
type Packet interface {
	// Write serializes the packet back to its wire line, including the
	// trailing newline.
	Write() string
}

// Numbered is implemented by sequenced packets. Control lines (h, c, s, p
// prefixes) carry no number and do not implement it.
type Numbered interface {
	PacketNum() D
}
