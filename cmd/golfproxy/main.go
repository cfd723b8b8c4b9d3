// Command golfproxy sits between a golf client and a live server and
// prints the decoded traffic of both directions. Every relayed line is
// parsed with the matching grammar and serialized back; a mismatch is
// shown as a character diff, which makes the proxy a protocol conformance
// check against real clients.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/clientpackets"
	"github.com/Nokkasiili/minigolf-server/internal/protocol/serverpackets"
)

func main() {
	listen := flag.String("listen", "127.0.0.1:8080", "address to accept clients on")
	target := flag.String("target", "127.0.0.1:4242", "golf server to relay to")
	flag.Parse()

	if err := run(*listen, *target); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(listen, target string) error {
	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", listen, err)
	}

	color.Magenta("[ Listening %s ]", listen)

	for {
		client, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("accepting client: %w", err)
		}
		color.Cyan("[ Accepted %s ]", client.RemoteAddr())
		go handleClient(client, target)
	}
}

// handleClient opens the upstream connection and relays both directions
// until either side goes away.
func handleClient(client net.Conn, target string) {
	defer client.Close()

	server, err := net.Dial("tcp", target)
	if err != nil {
		slog.Error("connecting to target", "target", target, "err", err)
		return
	}
	defer server.Close()

	done := make(chan struct{}, 2)
	go func() {
		relay(client, server, clientDirection)
		done <- struct{}{}
	}()
	go func() {
		relay(server, client, serverDirection)
		done <- struct{}{}
	}()
	<-done
}

// direction bundles what differs between the two relay legs: the arrow,
// its color, and which grammar the bytes must satisfy.
type direction struct {
	arrow *color.Color
	label string
	parse func(string) (protocol.Packet, string, error)
}

var (
	clientDirection = direction{
		arrow: color.New(color.FgBlue),
		label: "=>",
		parse: clientpackets.Parse,
	}
	serverDirection = direction{
		arrow: color.New(color.FgGreen),
		label: "<=",
		parse: serverpackets.Parse,
	}
)

// relay copies src to dst, logging and round-trip checking every line.
// Bytes are forwarded untouched even when they fail to parse, so the
// proxy never breaks a session it does not understand.
func relay(src, dst net.Conn, dir direction) {
	buf := make([]byte, 2064)
	for {
		n, err := src.Read(buf)
		if err != nil {
			if err != io.EOF {
				slog.Debug("relay read ended", "err", err)
			}
			return
		}

		logChunk(string(buf[:n]), dir)

		if _, err := dst.Write(buf[:n]); err != nil {
			slog.Debug("relay write failed", "err", err)
			return
		}
	}
}

// logChunk prints each line of a relayed chunk and checks it against the
// direction's grammar.
func logChunk(chunk string, dir direction) {
	for _, line := range strings.Split(chunk, "\n") {
		if line == "" {
			continue
		}
		dir.arrow.Print(dir.label)
		fmt.Printf(" %q\n", line+"\n")

		checkLine(line+"\n", dir)
	}
}

// checkLine parses the line, reports any unconsumed tail, reserializes
// and diffs against the original bytes.
func checkLine(line string, dir direction) {
	pkt, rest, err := dir.parse(line)
	if err != nil {
		color.Red("?? %v", err)
		return
	}
	if rest != "" {
		fmt.Printf("[[%s]]\n", escape(rest))
	}
	if out := pkt.Write(); out != line[:len(line)-len(rest)] {
		printDiff(out, line)
	}
}

// printDiff shows the reserialized line with every character that differs
// from the wire original in red.
func printDiff(got, want string) {
	got, want = escape(got), escape(want)
	red := color.New(color.FgRed)
	for i, r := range got {
		if i < len(want) && want[i] == got[i] {
			fmt.Print(string(r))
		} else {
			red.Print(string(r))
		}
	}
	fmt.Println()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	return strings.ReplaceAll(s, "\t", `\t`)
}
