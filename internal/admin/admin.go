// Package admin decides whether an authenticated email may perform
// admin-only operations.
package admin

import "strings"

// Policy is a static allow-list of admin emails. Matching is exact on the
// lowercased, trimmed address; no domains or wildcards.
type Policy struct {
	allowed map[string]struct{}
}

// NewPolicy builds a policy from the configured email list.
func NewPolicy(emails []string) *Policy {
	allowed := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		allowed[e] = struct{}{}
	}
	return &Policy{allowed: allowed}
}

// IsAdmin reports whether the email is on the allow-list. An empty email is
// never an admin.
func (p *Policy) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	_, ok := p.allowed[email]
	return ok
}
