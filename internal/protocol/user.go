package protocol

import (
	"fmt"
	"strconv"
)

// User is the six-component caret-joined record describing a lobby member,
// for example "3:Nokkasiili^r^999^fi_FI^-^-". Components cannot contain
// tabs, carets, or newlines.
type User struct {
	// Name is the "3:" prefixed nick. Guest nicks keep their "~" marker.
	Name string
	// Flags holds status letters: w worm, r registered, v vip, s sheriff,
	// n no challenges.
	Flags string
	Rank  int
	Lang  string
	// Clan and Extra are "-" when unset.
	Clan  string
	Extra string
}

// ParseUser decodes one user record from the reader.
func ParseUser(r *Reader) (User, error) {
	var u User
	u.Name = r.Until("\t^\n")
	if err := r.Caret(); err != nil {
		return User{}, err
	}
	u.Flags = r.Until("\t^\n")
	if err := r.Caret(); err != nil {
		return User{}, err
	}
	rank := r.Until("\t^\n")
	n, err := strconv.Atoi(rank)
	if err != nil {
		return User{}, fmt.Errorf("bad user rank %q", rank)
	}
	u.Rank = n
	if err := r.Caret(); err != nil {
		return User{}, err
	}
	u.Lang = r.Until("\t^\n")
	if err := r.Caret(); err != nil {
		return User{}, err
	}
	u.Clan = r.Until("\t^\n")
	if err := r.Caret(); err != nil {
		return User{}, err
	}
	u.Extra = r.Until("\t^\n")
	return u, nil
}

// String returns the caret-joined wire form without a field separator.
func (u User) String() string {
	return u.Name + "^" + u.Flags + "^" + strconv.Itoa(u.Rank) + "^" +
		u.Lang + "^" + u.Clan + "^" + u.Extra
}

// TabUser consumes a separator and reads the following user record.
func (r *Reader) TabUser() (User, error) {
	if err := r.Tab(); err != nil {
		return User{}, err
	}
	return ParseUser(r)
}

// ParseUsers decodes a tab-separated list of at least one user record.
func ParseUsers(r *Reader) ([]User, error) {
	u, err := ParseUser(r)
	if err != nil {
		return nil, err
	}
	out := []User{u}
	for {
		save := r.pos
		if !r.SkipTab() {
			return out, nil
		}
		u, err := ParseUser(r)
		if err != nil {
			r.pos = save
			return out, nil
		}
		out = append(out, u)
	}
}
