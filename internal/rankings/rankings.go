// Package rankings sorts player or month rows by a stat category.
package rankings

import (
	"fmt"
	"sort"

	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/roles"
)

// Category selects which stat a ranking or hall record is computed from.
type Category string

const (
	CategoryMVP        Category = "mvp"
	CategoryArtilheiro Category = "artilheiro"
	CategoryGarcom     Category = "garcom"
	CategoryGoleiro    Category = "goleiro"
	CategoryDefensor   Category = "defensor"
	CategoryMaisJogos  Category = "mais_jogos"
)

// Categories lists every category in presentation order.
var Categories = []Category{
	CategoryMVP,
	CategoryArtilheiro,
	CategoryGarcom,
	CategoryGoleiro,
	CategoryDefensor,
	CategoryMaisJogos,
}

// ParseCategory validates a category tag from the outside world.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown ranking category %q", s)
}

// Row is one rankable line: a player plus the stat snapshot being ranked.
// For career rankings the snapshot is the profile itself; for month rankings
// it is that month's document.
type Row struct {
	Player       league.Player `json:"player"`
	MonthID      string        `json:"monthId,omitempty"`
	Overall      int           `json:"overall"`
	Jogos        int           `json:"jogos"`
	Gols         int           `json:"gols"`
	Assistencias int           `json:"assistencias"`
}

// Ranked is a row with its 1-based position after sorting.
type Ranked struct {
	Rank int `json:"rank"`
	Row
}

// CareerRow builds a Row from a player's running profile totals.
func CareerRow(p league.Player) Row {
	return Row{
		Player:       p,
		Overall:      p.Overall,
		Jogos:        p.Jogos,
		Gols:         p.Gols,
		Assistencias: p.Assistencias,
	}
}

// MonthRowToRow builds a Row from a cross-player month row.
func MonthRowToRow(r league.MonthRow) Row {
	return Row{
		Player:       r.Player,
		MonthID:      r.MonthID,
		Overall:      r.Overall,
		Jogos:        r.Jogos,
		Gols:         r.Gols,
		Assistencias: r.Assistencias,
	}
}

// Value returns the stat the category ranks by.
func Value(cat Category, r Row) int {
	switch cat {
	case CategoryArtilheiro:
		return r.Gols
	case CategoryGarcom:
		return r.Assistencias
	case CategoryMaisJogos:
		return r.Jogos
	default: // mvp, goleiro, defensor
		return r.Overall
	}
}

// Eligible reports whether a player belongs in the category's view. Only the
// goleiro and defensor categories filter; the rest rank everyone.
func Eligible(cat Category, p league.Player) bool {
	switch cat {
	case CategoryGoleiro:
		return roles.RoleOf(p.Funcao, p.Posicao) == roles.Goalkeeper
	case CategoryDefensor:
		return roles.RoleOf(p.Funcao, p.Posicao) == roles.Defender
	}
	return true
}

// Rank filters, sorts descending by the category value with overall as the
// tie-break, and assigns 1-based ranks. Full ties keep their input order.
func Rank(cat Category, rows []Row) []Ranked {
	filtered := make([]Row, 0, len(rows))
	for _, r := range rows {
		if Eligible(cat, r.Player) {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		vi, vj := Value(cat, filtered[i]), Value(cat, filtered[j])
		if vi != vj {
			return vi > vj
		}
		return filtered[i].Overall > filtered[j].Overall
	})

	ranked := make([]Ranked, len(filtered))
	for i, r := range filtered {
		ranked[i] = Ranked{Rank: i + 1, Row: r}
	}
	return ranked
}
