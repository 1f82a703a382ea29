package league

import (
	"database/sql"
	"errors"
	"sync"
)

// ErrDuplicateEmail is returned by CreatePlayer when the pre-check read finds
// another player with the same normalized email. The check is read-then-write,
// so two concurrent creations can still race past it.
var ErrDuplicateEmail = errors.New("a player with this email already exists")

// store handles all database operations for the league.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a player profile document. The JSON field names are the wire
// format the web client already speaks.
type Player struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Posicao        string `json:"posicao"`
	Funcao         string `json:"funcao"`
	Caracteristica string `json:"caracteristica"`
	Overall        int    `json:"overall"`
	Jogos          int    `json:"jogos"`
	Gols           int    `json:"gols"`
	Assistencias   int    `json:"assistencias"`
	FotoURL        string `json:"fotoUrl"`
}

// PlayerInput is the payload for creating or updating a player.
type PlayerInput struct {
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	Posicao        string `json:"posicao"`
	Funcao         string `json:"funcao"`
	Caracteristica string `json:"caracteristica"`
	Overall        int    `json:"overall"`
	Jogos          int    `json:"jogos"`
	Gols           int    `json:"gols"`
	Assistencias   int    `json:"assistencias"`
	FotoURL        string `json:"fotoUrl"`
}

// MonthStats is one month document of a player, keyed by a YYYY-MM id.
type MonthStats struct {
	MonthID      string `json:"monthId"`
	Overall      int    `json:"overall"`
	Jogos        int    `json:"jogos"`
	Gols         int    `json:"gols"`
	Assistencias int    `json:"assistencias"`
	Vitorias     int    `json:"vitorias"`
	GS           int    `json:"gs"`
	CS           int    `json:"cs"`
	UpdatedAt    int64  `json:"updatedAt,omitempty"`
}

// MatchRecord is one per-day match document of a player. It is write-only:
// nothing in the application reads it back except tests and audits.
type MatchRecord struct {
	Date         string `json:"date"`
	Month        string `json:"month"`
	Jogos        int    `json:"jogos"`
	Gols         int    `json:"gols"`
	Assistencias int    `json:"assistencias"`
	Vitoria      bool   `json:"vitoria"`
	CS           int    `json:"cs"`
	GS           int    `json:"gs"`
	CreatedAt    int64  `json:"createdAt,omitempty"`
}

// MatchDelta carries the per-match increments applied to a month document.
type MatchDelta struct {
	Gols         int
	Assistencias int
	Vitoria      bool
	CS           int
	GS           int
}

// MonthRow joins a player's current profile with one month's stat snapshot.
type MonthRow struct {
	Player       Player `json:"player"`
	MonthID      string `json:"monthId"`
	Overall      int    `json:"overall"`
	Jogos        int    `json:"jogos"`
	Gols         int    `json:"gols"`
	Assistencias int    `json:"assistencias"`
}
