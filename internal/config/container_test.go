package config

import "testing"

func TestResolveContainer(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"web", "$web"},
		{"log", "$log"},
		{"backups", "backups"},
		{"$web", "$web"},
	}
	for _, c := range cases {
		if got := ResolveContainer(c.in); got != c.want {
			t.Errorf("ResolveContainer(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
