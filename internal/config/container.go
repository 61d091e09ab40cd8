package config

// Reserved platform containers are addressed with a $ prefix; the config may
// use the logical short name instead. Identifier convention of the storage
// platform, not business logic.
var containerAliases = map[string]string{
	"web": "$web",
	"log": "$log",
}

// ResolveContainer maps a logical container name to the name used on the
// wire. Unknown names pass through unchanged.
func ResolveContainer(name string) string {
	if mapped, ok := containerAliases[name]; ok {
		return mapped
	}
	return name
}
