package report

// SanitizeFilename maps a group key to a safe report file name: every byte
// outside [A-Za-z0-9.-] becomes an underscore, so keys with spaces, slashes
// or other path-hostile characters cannot escape the output directory.
func SanitizeFilename(key string) string {
	out := []byte(key)
	for i := 0; i < len(out); i++ {
		c := out[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '.':
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
