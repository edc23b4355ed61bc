package render

import (
	"strings"
)

func maskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	user := parts[0]
	domainParts := strings.SplitN(parts[1], ".", 2)
	if len(domainParts) != 2 {
		return email
	}

	domain, tld := domainParts[0], domainParts[1]
	maskPart := func(s string) string {
		r := []rune(s)
		if len(r) <= 1 {
			return s
		} else if len(r) == 2 {
			return string(r[0]) + "*"
		}
		return string(r[0]) + strings.Repeat("*", len(r)-2) + string(r[len(r)-1])
	}
	return maskPart(user) + "@" + maskPart(domain) + "." + tld
}

// maskPesel keeps only the last 4 digits visible
func maskPesel(pesel string) string {
	n := len(pesel)
	if n <= 4 {
		return pesel
	}
	return strings.Repeat("*", n-4) + pesel[n-4:]
}
