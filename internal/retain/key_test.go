package retain

import "testing"

func TestDeriveKey(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"main.abc123.js", "main"},
		{"main.abc123.js.gz", "main"},
		{"photo-2.def456.jpg", "photo-2"},
		{"README", "README"},
		{".hidden", ""},
		{"a.b", "a"},
	}
	for _, c := range cases {
		if got := DeriveKey(c.name); got != c.want {
			t.Errorf("DeriveKey(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}
