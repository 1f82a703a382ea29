// Package hall computes the all-time best-per-category records across every
// player's full month history.
package hall

import (
	"fmt"

	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/rankings"
)

// Store is the narrow read surface the computation needs.
type Store interface {
	ListPlayersByName() ([]league.Player, error)
	ListMonths(playerID string) ([]league.MonthStats, error)
}

// Record is the best (value, month, player) triple for one category.
type Record struct {
	Category  rankings.Category `json:"category"`
	Label     string            `json:"label"`
	StatLabel string            `json:"statLabel"`
	Value     int               `json:"value"`
	MonthID   string            `json:"monthId"`
	Player    league.Player     `json:"player"`
}

type candidate struct {
	value   int
	ovr     int
	monthID string
	player  league.Player
}

func meta(cat rankings.Category) (label, statLabel string) {
	switch cat {
	case rankings.CategoryMVP:
		return "MVP (Recorde)", "OVR"
	case rankings.CategoryArtilheiro:
		return "Artilheiro (Recorde)", "GOLS"
	case rankings.CategoryGarcom:
		return "Garçom (Recorde)", "ASSIST"
	case rankings.CategoryGoleiro:
		return "Goleiro (Recorde)", "OVR"
	case rankings.CategoryDefensor:
		return "Defensor (Recorde)", "OVR"
	case rankings.CategoryMaisJogos:
		return "Mais Jogos (Recorde)", "JOGOS"
	}
	return "", ""
}

func valueFor(cat rankings.Category, m league.MonthStats) int {
	switch cat {
	case rankings.CategoryArtilheiro:
		return m.Gols
	case rankings.CategoryGarcom:
		return m.Assistencias
	case rankings.CategoryMaisJogos:
		return m.Jogos
	default: // mvp, goleiro, defensor
		return m.Overall
	}
}

// beats reports whether the challenger replaces the incumbent: strictly
// greater value wins, an equal value is broken by strictly greater month
// overall, and a tie in both keeps the incumbent (first seen wins). Player
// iteration is the name-ascending listing, which makes the first-seen rule
// deterministic here even though the source system left it to whatever order
// its store returned.
func beats(challenger, incumbent candidate) bool {
	if challenger.value != incumbent.value {
		return challenger.value > incumbent.value
	}
	return challenger.ovr > incumbent.ovr
}

// Compute rescans every player's full month history and returns one record
// per category that has at least one eligible candidate. Categories with no
// eligible player or month are omitted entirely. The full rescan is
// O(players x months) and acceptable at this scale.
func Compute(store Store) ([]Record, error) {
	players, err := store.ListPlayersByName()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	best := map[rankings.Category]*candidate{}

	for _, p := range players {
		months, err := store.ListMonths(p.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list months for player %s: %w", p.ID, err)
		}
		if len(months) == 0 {
			continue
		}

		for _, m := range months {
			for _, cat := range rankings.Categories {
				if !rankings.Eligible(cat, p) {
					continue
				}

				c := candidate{
					value:   valueFor(cat, m),
					ovr:     m.Overall,
					monthID: m.MonthID,
					player:  p,
				}

				current := best[cat]
				if current == nil || beats(c, *current) {
					cc := c
					best[cat] = &cc
				}
			}
		}
	}

	records := []Record{}
	for _, cat := range rankings.Categories {
		b := best[cat]
		if b == nil {
			continue
		}
		label, statLabel := meta(cat)
		records = append(records, Record{
			Category:  cat,
			Label:     label,
			StatLabel: statLabel,
			Value:     b.value,
			MonthID:   b.monthID,
			Player:    b.player,
		})
	}
	return records, nil
}
