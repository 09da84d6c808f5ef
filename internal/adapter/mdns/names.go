package mdns

import "strings"

const localDomain = ".local"

// LocalName turns a host name into the fully qualified name answered on the link, e.g. "Chats-1" -> "chats-1.local".
func LocalName(host string) string {
	name := strings.ToLower(strings.TrimSpace(host))
	name = strings.TrimSuffix(name, ".")

	if name == "" {
		return ""
	}

	if !strings.HasSuffix(name, localDomain) {
		name += localDomain
	}

	return name
}
