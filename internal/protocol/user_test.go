package protocol

import "testing"

func TestParseUser(t *testing.T) {
	r := NewReader("3:~anonym-2893^wn^-1^de_DE^-^-\trest")
	u, err := ParseUser(&r)
	if err != nil {
		t.Fatalf("ParseUser = %v", err)
	}
	want := User{Name: "3:~anonym-2893", Flags: "wn", Rank: -1, Lang: "de_DE", Clan: "-", Extra: "-"}
	if u != want {
		t.Fatalf("ParseUser = %+v, want %+v", u, want)
	}
	if u.String() != "3:~anonym-2893^wn^-1^de_DE^-^-" {
		t.Fatalf("String() = %q", u.String())
	}
	if got := r.Rest(); got != "\trest" {
		t.Fatalf("Rest() = %q", got)
	}
}

func TestParseUserBadRank(t *testing.T) {
	r := NewReader("3:x^r^abc^fi_FI^-^-")
	if _, err := ParseUser(&r); err == nil {
		t.Fatal("ParseUser accepted non-numeric rank")
	}
}

func TestParseUsers(t *testing.T) {
	line := "3:Benny^r^10^de_DE^-^-\t3:Jomppa^rn^146^fi_FI^-^-\n"
	r := NewReader(line)
	users, err := ParseUsers(&r)
	if err != nil {
		t.Fatalf("ParseUsers = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("ParseUsers len = %d", len(users))
	}
	if users[0].Name != "3:Benny" || users[1].Name != "3:Jomppa" {
		t.Fatalf("ParseUsers = %+v", users)
	}
	if users[1].Rank != 146 {
		t.Fatalf("rank = %d", users[1].Rank)
	}
	if got := r.Rest(); got != "\n" {
		t.Fatalf("Rest() = %q", got)
	}
}

func TestParseUsersStopsAtNonUser(t *testing.T) {
	// The separator before a field that is not a user record stays put.
	r := NewReader("3:Benny^r^10^de_DE^-^-\tplain\n")
	users, err := ParseUsers(&r)
	if err != nil {
		t.Fatalf("ParseUsers = %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("ParseUsers len = %d", len(users))
	}
	if got := r.Rest(); got != "\tplain\n" {
		t.Fatalf("Rest() = %q", got)
	}
}
