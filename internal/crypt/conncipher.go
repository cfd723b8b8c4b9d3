package crypt

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// DefaultMagic is the magic number both peers assume unless told
// otherwise; the client hardcodes it.
const DefaultMagic = 4

// Code point planes the connection cipher permutes. LF and CR stay in
// the clear in both planes so line framing survives encryption.
const (
	asciiLo = 1
	asciiHi = 125
	otherLo = 128
	otherHi = 2047
)

// ConnCipher scrambles whole protocol lines once the io handshake has
// announced the session seed. The tables are identical for a given
// (magic, seed) pair and each line re-seeds its own rolling skew from two
// header values carried in the ciphertext, so a single instance can
// serve both directions and lines may be processed in any order.
//
// Two seeded permutations do the heavy lifting: one over the printable
// ASCII plane 1..125 (with LF/CR squeezed out of the range), one over the
// two-byte code point plane 128..2047. Everything else passes through
// untouched.
type ConnCipher struct {
	magic    int
	seed     int
	asciiFwd [125]int
	asciiInv [125]int
	otherFwd [1920]int
	otherInv [1920]int
}

// NewConnCipher builds the permutation tables for a session. Both peers
// must call it with the same magic and seed.
func NewConnCipher(magic, seed int32) *ConnCipher {
	c := &ConnCipher{magic: int(magic), seed: int(seed)}
	for i := range c.asciiInv {
		c.asciiInv[i] = -1
	}
	for i := range c.otherInv {
		c.otherInv[i] = -1
	}

	random := NewConnRandom(seed)
	for index := 1; index <= 125; index++ {
		r := random.IntInRange(1, 125)
		for c.asciiInv[r-1] >= 0 {
			r = random.IntInRange(1, 125)
		}
		c.asciiFwd[index-1] = int(r)
		c.asciiInv[r-1] = index
	}
	for index := 128; index <= 2047; index++ {
		r := random.IntInRange(128, 2047)
		for c.otherInv[r-128] >= 0 {
			r = random.IntInRange(128, 2047)
		}
		c.otherFwd[index-128] = int(r)
		c.otherInv[r-128] = index
	}
	return c
}

// increment pushes a value out of the LF/CR codes: everything from 10 up
// shifts past 10, everything that lands on or beyond 13 shifts past 13.
func increment(v int) int {
	if v >= 10 {
		v++
	}
	if v >= 13 {
		v++
	}
	return v
}

// decrement is the inverse of increment on its output range.
func decrement(v int) int {
	if v > 13 {
		v--
	}
	if v > 10 {
		v--
	}
	return v
}

// magicMod wraps v into [lo, hi] with a Euclidean modulo.
func magicMod(v, lo, hi int) int {
	span := hi - lo + 1
	v -= lo
	if v > hi-lo {
		v %= span
	} else if v < 0 {
		v += ((-v-1)/span + 1) * span
	}
	return v + lo
}

// emit maps a transformed value onto its wire code. Values from 14 up go
// out as-is; the sub-14 survivors of increment (1..9, 11, 12) are packed
// downward around the LF/CR holes, with 1 and 2 taking the codes the
// packing leaves free.
func emit(v int) int {
	switch {
	case v >= 14:
		return v
	case v >= 3 && v <= 9:
		return v - 2
	case v == 11:
		return 9
	case v == 12:
		return 11
	case v == 1:
		return 8
	case v == 2:
		return 12
	}
	return v
}

// unemit inverts emit.
func unemit(v int) int {
	switch {
	case v >= 14:
		return v
	case v >= 1 && v <= 7:
		return v + 2
	case v == 8:
		return 1
	case v == 9:
		return 11
	case v == 11:
		return 12
	case v == 12:
		return 2
	}
	return v
}

// Encrypt scrambles one line. The two header values are drawn fresh per
// line; everything the peer needs to undo them travels in the ciphertext.
func (c *ConnCipher) Encrypt(s string) string {
	return c.encrypt(1+rand.IntN(125), 1+rand.IntN(125), s)
}

func (c *ConnCipher) encrypt(first, last int, s string) string {
	runes := []rune(s)
	split := magicMod(first, 1, len(runes)+1)

	var out strings.Builder
	out.Grow(len(s) + 2)
	out.WriteRune(rune(increment(first)))

	seedling := c.seed%99 - 49 + first - last
	for i, r := range runes {
		if split == i+1 {
			out.WriteRune(rune(increment(last)))
		}
		v := int(r)
		switch {
		case v >= asciiLo && v <= 127 && v != '\n' && v != '\r':
			v = decrement(v)
			v = magicMod(v+seedling, asciiLo, asciiHi)
			seedling++
			v = c.asciiFwd[v-1]
			v = increment(v)
			if v >= 14 {
				v = magicMod(v+c.magic-9, 14, 127)
			}
			v = emit(v)
		case v >= otherLo && v <= otherHi:
			v = magicMod(v+seedling, otherLo, otherHi)
			seedling += 2
			v = c.otherFwd[v-otherLo]
		}
		out.WriteRune(rune(v))
		seedling++
	}
	if split == len(runes)+1 {
		out.WriteRune(rune(increment(last)))
	}
	return out.String()
}

// Decrypt undoes Encrypt. It fails only on lines too mangled to carry the
// two header values; any other corruption decodes to garbage, exactly as
// it does for the client.
func (c *ConnCipher) Decrypt(s string) (string, error) {
	runes := []rune(s)
	if len(runes) < 2 {
		return "", fmt.Errorf("ciphered line too short: %d chars", len(runes))
	}
	h := int(runes[0])
	if h < 1 || h > 127 || h == '\n' || h == '\r' {
		return "", fmt.Errorf("bad cipher header char %q", runes[0])
	}

	first := decrement(h)
	split := magicMod(first, 1, len(runes)-1)
	last := decrement(int(runes[split]))

	seedling := last - first - (c.seed%99 - 49)
	end := len(runes)
	if split == len(runes)-1 {
		end = len(runes) - 1
	}

	var out strings.Builder
	out.Grow(len(s))
	for i := 1; i < end; i++ {
		if i == split {
			continue
		}
		v := int(runes[i])
		switch {
		case v >= asciiLo && v <= 127 && v != '\n' && v != '\r':
			v = unemit(v)
			if v >= 14 {
				v = magicMod(v+9-c.magic, 14, 127)
			}
			v = decrement(v)
			v = c.asciiInv[v-1]
			v = magicMod(v+seedling, asciiLo, asciiHi)
			seedling--
			v = increment(v)
		case v >= otherLo && v <= otherHi:
			v = c.otherInv[v-otherLo]
			v = magicMod(v+seedling, otherLo, otherHi)
			seedling -= 2
		}
		out.WriteRune(rune(v))
		seedling--
	}
	return out.String(), nil
}
