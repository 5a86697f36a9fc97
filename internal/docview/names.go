package docview

import (
	"net/url"
	"strconv"
	"strings"
)

// DecodeName reverses ISO 9075 escaping used for element names
// ("my_x0020_page" → "my page"). Malformed sequences are kept verbatim.
func DecodeName(name string) string {
	if !strings.Contains(name, "_x") {
		return name
	}
	var b strings.Builder
	for i := 0; i < len(name); {
		if i+7 <= len(name) && name[i] == '_' && name[i+1] == 'x' && name[i+6] == '_' {
			if r, err := strconv.ParseUint(name[i+2:i+6], 16, 32); err == nil {
				b.WriteRune(rune(r))
				i += 7
				continue
			}
		}
		b.WriteByte(name[i])
		i++
	}
	return b.String()
}

// RepositoryName maps a file system name from a content package to the
// repository node name: "_jcr_content" → "jcr:content", "%3a" → ":".
func RepositoryName(platformName string) string {
	name := platformName
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	// "__foo" is an escaped leading underscore
	if strings.HasPrefix(name, "__") {
		return name[1:]
	}
	if strings.HasPrefix(name, "_") {
		if idx := strings.IndexByte(name[1:], '_'); idx > 0 && idx+2 < len(name) {
			return name[1:idx+1] + ":" + name[idx+2:]
		}
	}
	return name
}

// ChildPath joins a parent repository path and a child name.
func ChildPath(parent, name string) string {
	if parent == "/" || parent == "" {
		return "/" + name
	}
	return parent + "/" + name
}

// BaseName returns the last segment of a repository path ("" for the root).
func BaseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
