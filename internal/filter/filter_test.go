package filter

import "testing"

func TestContainsBadWords(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"huora", true},
		{"huoraa", true},
		{"h u o r a", true},
		{"sinä olet huora", true},
		{"helvetti", true},
		{"kulli", true},
		{"lol", false},
		{"kuli", false},
		{"hello", false},
		{"he'll be back", false},
		{"hu0ra", false}, // raw digits only match after Filter
		{"", false},
	}
	for _, c := range cases {
		if got := ContainsBadWords(c.in); got != c.want {
			t.Errorf("ContainsBadWords(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFilter(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"hu0rá", "huora"},
		{"VITTU", "vittu"},
		{"v1ttu", "vittu"},
		{"ku77i", "kutti"},
		{"fück", "fuck"},
		{"plain text stays", "plain text stays"},
	}
	for _, c := range cases {
		if got := Filter(c.in); got != c.want {
			t.Errorf("Filter(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFilterThenContains(t *testing.T) {
	for _, in := range []string{"HU0RÁ", "Fück", "p4ska"} {
		if !ContainsBadWords(Filter(in)) {
			t.Errorf("ContainsBadWords(Filter(%q)) = false, want true", in)
		}
	}
	if ContainsBadWords(Filter("Nice shot!")) {
		t.Errorf("clean message flagged")
	}
}

func TestNameFilter(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"kolo", "kolo"},
		{"kolo!", "kolo"},
		{"<Benny>", "Benny"},
		{" Benny ", "Benny"},
		{"a!b", "a-b"},
		{"日本語", ""},
		{"---", ""},
		{"Ääkkönen", "Ääkkönen"},
	}
	for _, c := range cases {
		if got := NameFilter(c.in); got != c.want {
			t.Errorf("NameFilter(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
