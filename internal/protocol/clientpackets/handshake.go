// Package clientpackets defines every line a golf client can send and the
// parser that recognizes them. Parse tries packet forms in a fixed order
// with full backtracking, so a longer tag never loses to its prefix.
package clientpackets

import (
	"fmt"

	"github.com/Nokkasiili/minigolf-server/internal/protocol"
)

// Version reports the client build number right after the handshake.
// Wire: "d 0 version\t35".
type Version struct {
	protocol.D
	Version int
}

func parseVersion(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("version")
	if err != nil {
		return nil, err
	}
	v, err := r.TabInt()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Version{D: d, Version: v}, nil
}

// Write serializes the packet.
func (p *Version) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("version")
	w.Int(p.Version)
	return w.End()
}

// Language carries the client locale, for example "fi_FI".
type Language struct {
	protocol.D
	Language string
}

func parseLanguage(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("language")
	if err != nil {
		return nil, err
	}
	lang, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Language{D: d, Language: lang}, nil
}

// Write serializes the packet.
func (p *Language) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("language")
	w.Field(p.Language)
	return w.End()
}

// LoginType announces which login flow follows: nr, reg or ttm.
type LoginType struct {
	protocol.D
	Type protocol.LoginType
}

func parseLoginType(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("logintype")
	if err != nil {
		return nil, err
	}
	lt, err := r.TabLoginType()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &LoginType{D: d, Type: lt}, nil
}

// Write serializes the packet.
func (p *LoginType) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("logintype")
	w.Field(p.Type.String())
	return w.End()
}

// Login carries an optional session id from a previous connection.
// Wire: "d 2 login\t" for a fresh session, "d 2 login\t123" to resume.
type Login struct {
	protocol.D
	Session    int
	HasSession bool
}

func parseLogin(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("login")
	if err != nil {
		return nil, err
	}
	if err := r.Tab(); err != nil {
		return nil, err
	}
	r.SkipTab()
	p := &Login{D: d}
	if !r.TakeNewline() {
		if p.Session, err = r.Int(); err != nil {
			return nil, err
		}
		p.HasSession = true
		r.TakeNewline()
	}
	return p, nil
}

// Write serializes the packet.
func (p *Login) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("login")
	if p.HasSession {
		w.Int(p.Session)
	} else {
		w.Tab()
	}
	return w.End()
}

// TTLogin carries the credentials for registered and track test logins.
// Guests send both fields empty.
type TTLogin struct {
	protocol.D
	Username string
	Password string
}

func parseTTLogin(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("ttlogin")
	if err != nil {
		return nil, err
	}
	user, err := r.TabField()
	if err != nil {
		return nil, err
	}
	pass, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &TTLogin{D: d, Username: user, Password: pass}, nil
}

// Write serializes the packet.
func (p *TTLogin) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("ttlogin")
	w.Field(p.Username)
	w.Field(p.Password)
	return w.End()
}

// Quit announces a clean disconnect.
type Quit struct {
	protocol.D
}

func parseQuit(r *protocol.Reader) (protocol.Packet, error) {
	d, err := r.DTag("quit")
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Quit{D: d}, nil
}

// Write serializes the packet.
func (p *Quit) Write() string {
	w := protocol.NewWriter()
	w.D(p.D)
	w.Tag("quit")
	return w.End()
}

// TLog is a client-side log report. Unlike the d packets it carries no
// sequence number. Wire: "s tlog\t<count>\t<id>\t<text>".
type TLog struct {
	Count int
	ID    string
	Text  string
}

func parseTLog(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("s tlog"); err != nil {
		return nil, err
	}
	count, err := r.TabInt()
	if err != nil {
		return nil, err
	}
	id, err := r.TabField()
	if err != nil {
		return nil, err
	}
	text, err := r.TabField()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &TLog{Count: count, ID: id, Text: text}, nil
}

// Write serializes the packet.
func (p *TLog) Write() string {
	w := protocol.NewWriter()
	w.Tag("s tlog")
	w.Int(p.Count)
	w.Field(p.ID)
	w.Field(p.Text)
	return w.End()
}

// New asks for a fresh connection id during the handshake.
type New struct{}

func parseNew(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c new"); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &New{}, nil
}

// Write serializes the packet.
func (p *New) Write() string { return "c new\n" }

// Old resumes the connection id of a dropped session.
type Old struct {
	ID int
}

func parseOld(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c old"); err != nil {
		return nil, err
	}
	if err := r.Space(); err != nil {
		return nil, err
	}
	id, err := r.Int()
	if err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Old{ID: id}, nil
}

// Write serializes the packet.
func (p *Old) Write() string { return fmt.Sprintf("c old %d\n", p.ID) }

// Pong answers a server ping.
type Pong struct{}

func parsePong(r *protocol.Reader) (protocol.Packet, error) {
	if err := r.Tag("c pong"); err != nil {
		return nil, err
	}
	r.TakeNewline()
	return &Pong{}, nil
}

// Write serializes the packet.
func (p *Pong) Write() string { return "c pong\n" }
