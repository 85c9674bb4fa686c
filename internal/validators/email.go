// Package validators holds request checks that need more than binding tags,
// currently the DNS-backed email domain check used at registration.
package validators

import (
	"net"
	"strings"
)

// NormalizeEmail canonicalizes an address before lookup or storage so the
// uniqueness check cannot be dodged with casing or padding.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid reports whether the address's domain resolves: MX
// records first, then a plain host lookup for domains that receive mail on
// their A record. Callers gate this behind config since it hits DNS.
func IsEmailDomainValid(email string) bool {
	domain, ok := domainOf(email)
	if !ok {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}

func domainOf(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
