// Package gameserver accepts golf client connections, walks them through
// the login conversation and hands them to the tick loop, which owns all
// game state. Connection goroutines only move bytes; everything else
// happens on the tick.
package gameserver

import (
	"bytes"
	"strings"

	"github.com/Nokkasiili/minigolf-server/internal/crypt"
	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// Ciphers bundles the two optional obfuscation layers of a connection.
// Both nil means plaintext, which is what recorded client traffic shows.
type Ciphers struct {
	Conn *crypt.ConnCipher
	Dict *crypt.GameCipher
}

// ParseFunc recognizes one packet at the start of input and returns the
// unconsumed rest.
type ParseFunc func(string) (protocol.Packet, string, error)

// Codec buffers raw connection bytes and yields one parsed packet at a
// time. With ciphers set, complete lines are deciphered as they arrive
// and the parser only ever sees plaintext.
type Codec struct {
	parse   ParseFunc
	ciphers Ciphers
	staging []byte // ciphertext tail waiting for its newline
	buf     []byte // plaintext awaiting parse
}

// NewCodec builds a codec around the given packet grammar.
func NewCodec(parse ParseFunc, ciphers Ciphers) *Codec {
	return &Codec{parse: parse, ciphers: ciphers}
}

// Accept appends received bytes. In ciphered mode it deciphers every
// complete line; a line the connection cipher cannot undo is an error.
func (c *Codec) Accept(b []byte) error {
	if c.ciphers.Conn == nil {
		c.buf = append(c.buf, b...)
		return nil
	}

	c.staging = append(c.staging, b...)
	for {
		idx := bytes.IndexByte(c.staging, '\n')
		if idx < 0 {
			return nil
		}
		line := string(c.staging[:idx])
		c.staging = c.staging[idx+1:]

		plain, err := c.ciphers.Conn.Decrypt(line)
		if err != nil {
			return err
		}
		if c.ciphers.Dict != nil {
			plain = c.ciphers.Dict.Decrypt(plain)
		}
		c.buf = append(c.buf, plain...)
		c.buf = append(c.buf, '\n')
	}
}

// Next parses one packet from the buffer. A buffer without a complete
// line waits for more bytes; parse errors surface to the caller.
func (c *Codec) Next() (protocol.Packet, error) {
	if len(c.buf) == 0 || bytes.IndexByte(c.buf, '\n') < 0 {
		return nil, nil
	}
	pkt, rest, err := c.parse(string(c.buf))
	if err != nil {
		return nil, err
	}
	c.buf = c.buf[len(c.buf)-len(rest):]
	return pkt, nil
}

// Encode serializes a packet for the wire, applying the ciphers when
// set. The dictionary layer only covers dispatched lines.
func (c *Codec) Encode(p protocol.Packet) []byte {
	s := p.Write()
	if c.ciphers.Conn == nil {
		return []byte(s)
	}
	line := strings.TrimSuffix(s, "\n")
	if c.ciphers.Dict != nil && strings.HasPrefix(line, "d ") {
		line = c.ciphers.Dict.Encrypt(line)
	}
	return []byte(c.ciphers.Conn.Encrypt(line) + "\n")
}
