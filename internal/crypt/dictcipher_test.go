package crypt

import (
	"strings"
	"testing"
)

func TestGameCipherTableOrder(t *testing.T) {
	g := NewGameCipher()
	if len(g.cmds) != len(cipherCmds) {
		t.Fatalf("table size %d, want %d", len(g.cmds), len(cipherCmds))
	}
	// Longest fragments first; ties keep declaration order.
	if g.cmds[0] != "game\tresetvoteskip" {
		t.Errorf("cmds[0] = %q", g.cmds[0])
	}
	if g.cmds[1] != "game\tbeginstroke\t" {
		t.Errorf("cmds[1] = %q", g.cmds[1])
	}
	for i := 1; i < len(g.cmds); i++ {
		if len(g.cmds[i]) > len(g.cmds[i-1]) {
			t.Fatalf("table not sorted at %d: %q after %q", i, g.cmds[i], g.cmds[i-1])
		}
	}
}

func TestGameCipherEncryptVector(t *testing.T) {
	g := NewGameCipher()
	got := g.Encrypt("game\tbeginstroke\t70q4\n")
	if got != "\x01\x01!70q4\n" {
		t.Fatalf("Encrypt = %q, want %q", got, "\x01\x01!70q4\n")
	}
}

func TestGameCipherRoundTrip(t *testing.T) {
	g := NewGameCipher()
	lines := []string{
		"game\tbeginstroke\t7ors\n",
		"game\tendstroke\t0\tf\n",
		"lobby\tsayp\tNokkasiili\tlol lol lol\n",
		"status\tlobby\t1\n",
		"gameinfo\t-\tf\t13\t3\t10\t1\t20\t60\t0\t1\t0\t0\tf\n",
		"no fragments here at all\n",
		"say\tsay\tsay\t\n",
		"gamegame\n",
		"viesti ääkkösillä ja 顔文字\n",
		"\x01 escape byte already taken, game\tstart\n",
		"",
	}
	for _, line := range lines {
		if got := g.Decrypt(g.Encrypt(line)); got != line {
			t.Errorf("round trip of %q: got %q (wire %q)", line, got, g.Encrypt(line))
		}
	}
}

func TestGameCipherNoEscapeAvailable(t *testing.T) {
	g := NewGameCipher()
	var b strings.Builder
	for c := byte(1); c < 32; c++ {
		b.WriteByte(c)
	}
	b.WriteString("game\tstart")
	line := b.String()

	if got := g.Encrypt(line); got != line {
		t.Fatalf("line with every control byte must pass through, got %q", got)
	}
}

func TestGameCipherDecryptPassThrough(t *testing.T) {
	g := NewGameCipher()
	for _, line := range []string{"plain text", "d 5 lobby\tsay\t", "", " leading space"} {
		if got := g.Decrypt(line); got != line {
			t.Errorf("Decrypt(%q) = %q, want unchanged", line, got)
		}
	}
}
