package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalkeeperHeuristic(t *testing.T) {
	tests := []struct {
		pos  string
		want bool
	}{
		{"Goleiro", true},
		{"Goleiro Reserva", true},
		{"gk", true},
		{"GK", true},
		{"Zagueiro", false},
		{"ATA", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsGoalkeeperPosition(tt.pos), "position %q", tt.pos)
	}
}

func TestDefenderHeuristic(t *testing.T) {
	tests := []struct {
		pos  string
		want bool
	}{
		{"ZAGUEIRO", true},
		{"zagueiro central", true},
		{"Defensor", true},
		{"z", true},
		{"LD", true},
		{"cb", true},
		{"ATA", false},
		{"Meia", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDefenderPosition(tt.pos), "position %q", tt.pos)
	}
}

func TestFromPosition(t *testing.T) {
	tests := []struct {
		pos  string
		want Role
	}{
		// "Goleiro" also matches the defender "le" substring; goalkeeper wins
		// because it is checked first.
		{"Goleiro", Goalkeeper},
		{"ZAGUEIRO", Defender},
		{"Meia Central", Midfielder},
		{"Volante", Midfielder},
		{"ATA", Attacker},
		{"Atacante", Attacker},
		{"???", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromPosition(tt.pos), "position %q", tt.pos)
	}
}

func TestRoleOf(t *testing.T) {
	// The enumerated role takes precedence over the position text.
	assert.Equal(t, Attacker, RoleOf("ATA", "Goleiro"))
	// Fallback to the heuristic shim when no role is stored.
	assert.Equal(t, Goalkeeper, RoleOf("", "Goleiro Reserva"))
	assert.Equal(t, Unknown, RoleOf("", "???"))
}
