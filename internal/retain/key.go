package retain

import "strings"

// DeriveKey returns the group key for a blob name: everything before the
// first dot. Hashed build outputs like main.abc123.js and main.abc123.js.gz
// both map to "main". A name without a dot is its own key.
func DeriveKey(name string) string {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
