// Package roles classifies players into the four role buckets used by
// rankings, hall records and selections.
//
// The enumerated role is the source of truth and is set when a player is
// created. The free-text position heuristics exist only as an import shim for
// profiles that predate the role field; they are substring matches and
// therefore ambiguous by nature.
package roles

import "strings"

// Role is an enumerated role bucket.
type Role string

const (
	Goalkeeper Role = "GOL"
	Defender   Role = "ZAG"
	Midfielder Role = "MEI"
	Attacker   Role = "ATA"
	Unknown    Role = ""
)

// Parse returns the Role matching s, or Unknown.
func Parse(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Goalkeeper):
		return Goalkeeper
	case string(Defender):
		return Defender
	case string(Midfielder):
		return Midfielder
	case string(Attacker):
		return Attacker
	}
	return Unknown
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsGoalkeeperPosition reports whether a free-text position looks like a
// goalkeeper ("Goleiro", "GK", ...).
func IsGoalkeeperPosition(pos string) bool {
	p := norm(pos)
	return strings.Contains(p, "gol") || p == "gk"
}

// IsDefenderPosition reports whether a free-text position looks like a
// defender ("Zagueiro", "CB", "LD", ...).
func IsDefenderPosition(pos string) bool {
	p := norm(pos)
	if p == "z" {
		return true
	}
	for _, sub := range []string{"zag", "def", "ld", "le", "cb", "rb", "lb"} {
		if strings.Contains(p, sub) {
			return true
		}
	}
	return false
}

func isMidfielderPosition(pos string) bool {
	p := norm(pos)
	for _, sub := range []string{"mei", "vol", "mid", "cm"} {
		if strings.Contains(p, sub) {
			return true
		}
	}
	return false
}

func isAttackerPosition(pos string) bool {
	p := norm(pos)
	for _, sub := range []string{"ata", "st", "fw", "cf"} {
		if strings.Contains(p, sub) {
			return true
		}
	}
	return false
}

// FromPosition classifies a free-text position into a Role. The checks run
// goalkeeper first since position strings like "Goleiro" also match the
// defender substrings.
func FromPosition(pos string) Role {
	switch {
	case IsGoalkeeperPosition(pos):
		return Goalkeeper
	case IsDefenderPosition(pos):
		return Defender
	case isMidfielderPosition(pos):
		return Midfielder
	case isAttackerPosition(pos):
		return Attacker
	}
	return Unknown
}

// RoleOf resolves a player's role: the stored enumerated role when present,
// falling back to the position heuristic for older profiles.
func RoleOf(funcao, posicao string) Role {
	if r := Parse(funcao); r != Unknown {
		return r
	}
	return FromPosition(posicao)
}
