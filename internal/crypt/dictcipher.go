package crypt

import (
	"bytes"
	"slices"
	"sort"
	"strings"
)

// cipherCmds is the substitution dictionary baked into the game client:
// protocol command fragments plus a handful of staff names the original
// operators snuck in. Declaration order matters — the table is stable
// sorted by descending length at construction, and the wire encodes a
// fragment as its index in the sorted table.
var cipherCmds = [...]string{
	"status\t",
	"basicinfo\t",
	"numberofusers\t",
	"users\t",
	"ownjoin\t",
	"joinfromgame\t",
	"say\t",
	"logintype\t",
	"login",
	"lobbyselect\t",
	"select\t",
	"back",
	"challenge\t",
	"cancel\t",
	"accept\t",
	"cfail\t",
	"nouser",
	"nochall",
	"cother",
	"cbyother",
	"refuse",
	"afail",
	"gsn\t",
	"lobby\tnc\t",
	"lobby\t",
	"lobby",
	"tracksetlist\t",
	"tracksetlist",
	"gamelist\t",
	"full\t",
	"add\t",
	"change\t",
	"remove\t",
	"gameinfo\t",
	"players",
	"owninfo\t",
	"game\tstarttrack\t",
	"game\tstartturn\t",
	"game\tstart",
	"game\tbeginstroke\t",
	"game\tendstroke\t",
	"game\tresetvoteskip",
	"game\t",
	"game",
	"quit",
	"join\t",
	"part\t",
	"cspt\t",
	"qmpt",
	"cspc\t",
	"jmpt\t",
	"tracklist\t",
	"Tiikoni",
	"Leonardo",
	"Ennaji",
	"Hoeg",
	"Darwin",
	"Dante",
	"ConTrick",
	"Dewlor",
	"Scope",
	"SuperGenuis",
	"Zwan",
	"\tT !\t",
	"\tcr\t",
	"rnop",
	"nop\t",
	"error",
}

// GameCipher is the command-dictionary substitution layer applied to the
// payload of dispatched packets. It is stateless; one instance serves
// every connection.
type GameCipher struct {
	cmds []string
}

func NewGameCipher() *GameCipher {
	cmds := make([]string, len(cipherCmds))
	copy(cmds, cipherCmds[:])
	sort.SliceStable(cmds, func(i, j int) bool {
		return len(cmds[i]) > len(cmds[j])
	})
	return &GameCipher{cmds: cmds}
}

// findEscapeByte picks the smallest control byte absent from the line.
func findEscapeByte(s string) (byte, bool) {
	for c := byte(1); c < 32; c++ {
		if strings.IndexByte(s, c) < 0 {
			return c, true
		}
	}
	return 0, false
}

// Encrypt replaces known command fragments with two-byte escape pairs and
// prepends the chosen escape byte. A line already containing every byte
// in 1..31 has no usable escape and passes through untouched.
func (g *GameCipher) Encrypt(s string) string {
	esc, ok := findEscapeByte(s)
	if !ok {
		return s
	}
	line := []byte(s)
	for i, cmd := range g.cmds {
		pair := []byte{esc, byte(' ' + i)}
		frag := []byte(cmd)
		for from := 0; ; {
			idx := bytes.Index(line[from:], frag)
			if idx < 0 {
				break
			}
			idx += from
			if idx > 0 && line[idx-1] == esc {
				// Inside an earlier escape pair; those two
				// bytes are opaque now.
				from = idx + 1
				continue
			}
			line = slices.Concat(line[:idx:idx], pair, line[idx+len(cmd):])
			from = idx + len(pair)
		}
	}
	return string(esc) + string(line)
}

// Decrypt expands escape pairs back into dictionary fragments. Lines not
// starting with a control byte were never ciphered and pass through.
func (g *GameCipher) Decrypt(s string) string {
	if s == "" || s[0] == 0 || s[0] >= 32 {
		return s
	}
	esc := s[0]
	body := s[1:]

	var out strings.Builder
	out.Grow(len(body) * 2)
	for i := 0; i < len(body); i++ {
		if body[i] != esc {
			out.WriteByte(body[i])
			continue
		}
		if i+1 >= len(body) {
			out.WriteByte(body[i])
			break
		}
		idx := int(body[i+1]) - ' '
		if idx < 0 || idx >= len(g.cmds) {
			out.WriteByte(body[i])
			continue
		}
		out.WriteString(g.cmds[idx])
		i++
	}
	return out.String()
}
