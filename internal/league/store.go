package league

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mgualv/baba-elite/internal/roles"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

// normalizeEmail is the single normalization applied to emails everywhere
// they enter the store.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreatePlayer inserts a new player document after a pre-check read on the
// email. The check is not a store-level constraint; concurrent creations with
// the same email can still both succeed.
func (s *store) CreatePlayer(input PlayerInput) (string, error) {
	email := normalizeEmail(input.Email)
	if email != "" {
		existing, err := s.GetPlayerByEmail(email)
		if err != nil {
			return "", fmt.Errorf("failed to pre-check email: %w", err)
		}
		if existing != nil {
			return "", ErrDuplicateEmail
		}
	}

	funcao := string(roles.Parse(input.Funcao))
	if funcao == "" {
		// Import shim for profiles created without an explicit role.
		funcao = string(roles.FromPosition(input.Posicao))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO players (id, nome, email, posicao, funcao, caracteristica, overall, jogos, gols, assistencias, foto_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, input.Nome, email, input.Posicao, funcao, input.Caracteristica,
		input.Overall, input.Jogos, input.Gols, input.Assistencias, input.FotoURL,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert player: %w", err)
	}
	log.Info("Created player", "id", id, "nome", input.Nome)
	return id, nil
}

// GetPlayerByID returns the player with the given id, or nil when absent.
func (s *store) GetPlayerByID(id string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, nome, email, posicao, funcao, caracteristica, overall, jogos, gols, assistencias, foto_url
		FROM players WHERE id = ?`, id)
	return scanPlayerRow(row)
}

// GetPlayerByEmail returns the first player matching the normalized email, or
// nil when none matches. A missing player is a valid empty result, not an
// error.
func (s *store) GetPlayerByEmail(email string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, nome, email, posicao, funcao, caracteristica, overall, jogos, gols, assistencias, foto_url
		FROM players WHERE email = ? LIMIT 1`, normalizeEmail(email))
	return scanPlayerRow(row)
}

func (s *store) ListPlayersByName() ([]Player, error) {
	return s.listPlayers("nome ASC")
}

func (s *store) ListPlayersByOverall() ([]Player, error) {
	return s.listPlayers("overall DESC")
}

func (s *store) listPlayers(order string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, nome, email, posicao, funcao, caracteristica, overall, jogos, gols, assistencias, foto_url
		FROM players ORDER BY ` + order)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := []Player{}
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// UpdatePlayer overwrites every profile field of the player.
func (s *store) UpdatePlayer(id string, input PlayerInput) error {
	funcao := string(roles.Parse(input.Funcao))
	if funcao == "" {
		funcao = string(roles.FromPosition(input.Posicao))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		UPDATE players
		SET nome = ?, email = ?, posicao = ?, funcao = ?, caracteristica = ?,
		    overall = ?, jogos = ?, gols = ?, assistencias = ?, foto_url = ?
		WHERE id = ?`,
		input.Nome, normalizeEmail(input.Email), input.Posicao, funcao, input.Caracteristica,
		input.Overall, input.Jogos, input.Gols, input.Assistencias, input.FotoURL, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update player %s: %w", id, err)
	}
	return nil
}

func (s *store) UpdatePlayerPhoto(id, fotoURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE players SET foto_url = ? WHERE id = ?", fotoURL, id)
	if err != nil {
		return fmt.Errorf("failed to update player photo: %w", err)
	}
	return nil
}

// DeletePlayer removes the profile document only. Month and match rows are
// deliberately left behind, matching the source system's orphaned
// subcollections.
func (s *store) DeletePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM players WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete player %s: %w", id, err)
	}
	return nil
}

// ListMonths returns all month documents of a player ordered by month id
// descending. The zero-padded YYYY-MM key makes string order chronological.
func (s *store) ListMonths(playerID string) ([]MonthStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT month_id, overall, jogos, gols, assistencias, vitorias, gs, cs, updated_at
		FROM month_stats WHERE player_id = ?
		ORDER BY month_id DESC`, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list months: %w", err)
	}
	defer rows.Close()

	months := []MonthStats{}
	for rows.Next() {
		m, err := scanMonth(rows)
		if err != nil {
			log.Error("Failed to scan month row", "error", err, "playerID", playerID)
			continue
		}
		months = append(months, *m)
	}
	return months, rows.Err()
}

// GetMonthStats returns one month document, or nil when absent.
func (s *store) GetMonthStats(playerID, monthID string) (*MonthStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT month_id, overall, jogos, gols, assistencias, vitorias, gs, cs, updated_at
		FROM month_stats WHERE player_id = ? AND month_id = ?`, playerID, monthID)

	m, err := scanMonth(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get month stats: %w", err)
	}
	return m, nil
}

// UpsertMonthStats is the manual admin write path: a full merge-set of every
// stat field. It is not reconciled with the ledger's increment path; mixing
// the two on the same month is last-write-wins on overlapping fields.
func (s *store) UpsertMonthStats(playerID string, input MonthStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO month_stats (player_id, month_id, overall, jogos, gols, assistencias, vitorias, gs, cs, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id, month_id) DO UPDATE SET
			overall = excluded.overall,
			jogos = excluded.jogos,
			gols = excluded.gols,
			assistencias = excluded.assistencias,
			vitorias = excluded.vitorias,
			gs = excluded.gs,
			cs = excluded.cs,
			updated_at = excluded.updated_at`,
		playerID, input.MonthID, input.Overall, input.Jogos, input.Gols,
		input.Assistencias, input.Vitorias, input.GS, input.CS, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert month stats: %w", err)
	}
	return nil
}

func (s *store) DeleteMonthStats(playerID, monthID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM month_stats WHERE player_id = ? AND month_id = ?", playerID, monthID)
	if err != nil {
		return fmt.Errorf("failed to delete month stats: %w", err)
	}
	return nil
}

// IncrementMonthStats is the ledger write path: ensure the month row exists,
// then apply commutative per-field increments. The ensure+increment pair runs
// in one transaction; atomicity with the preceding match-record write is
// intentionally NOT provided.
func (s *store) IncrementMonthStats(playerID, monthID string, delta MatchDelta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin month increment: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO month_stats (player_id, month_id) VALUES (?, ?)
		ON CONFLICT(player_id, month_id) DO NOTHING`, playerID, monthID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to ensure month row: %w", err)
	}

	wins := 0
	if delta.Vitoria {
		wins = 1
	}
	if _, err := tx.Exec(`
		UPDATE month_stats SET
			jogos = jogos + 1,
			gols = gols + ?,
			assistencias = assistencias + ?,
			vitorias = vitorias + ?,
			gs = gs + ?,
			cs = cs + ?,
			updated_at = ?
		WHERE player_id = ? AND month_id = ?`,
		delta.Gols, delta.Assistencias, wins, delta.GS, delta.CS,
		time.Now().Unix(), playerID, monthID,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to increment month stats: %w", err)
	}

	return tx.Commit()
}

// PutMatchRecord merge-upserts the per-day match document.
func (s *store) PutMatchRecord(playerID string, rec MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vitoria := 0
	if rec.Vitoria {
		vitoria = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO match_records (player_id, match_date, month_id, jogos, gols, assistencias, vitoria, cs, gs, created_at)
		VALUES (?, ?, ?, 1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id, match_date) DO UPDATE SET
			month_id = excluded.month_id,
			gols = excluded.gols,
			assistencias = excluded.assistencias,
			vitoria = excluded.vitoria,
			cs = excluded.cs,
			gs = excluded.gs`,
		playerID, rec.Date, rec.Month, rec.Gols, rec.Assistencias, vitoria,
		rec.CS, rec.GS, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to put match record: %w", err)
	}
	return nil
}

// ListMonthRows fans out across all players and fetches the given month for
// each one. Cost is linear in the player count regardless of how many played
// that month; fine at this scale, flagged as a scaling non-goal.
func (s *store) ListMonthRows(monthID string) ([]MonthRow, error) {
	players, err := s.ListPlayersByName()
	if err != nil {
		return nil, err
	}

	rows := []MonthRow{}
	for _, p := range players {
		m, err := s.GetMonthStats(p.ID, monthID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		rows = append(rows, MonthRow{
			Player:       p,
			MonthID:      monthID,
			Overall:      m.Overall,
			Jogos:        m.Jogos,
			Gols:         m.Gols,
			Assistencias: m.Assistencias,
		})
	}
	return rows, nil
}

// scanPlayerRow adapts scanPlayer for QueryRow, mapping no-rows to nil.
func scanPlayerRow(row *sql.Row) (*Player, error) {
	p, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	return p, nil
}

// scanPlayer is the single coercion point for player documents: NULL or
// missing values become zero values.
func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var nome, email, posicao, funcao, caracteristica, fotoURL sql.NullString
	var overall, jogos, gols, assistencias sql.NullInt64

	err := scanner.Scan(&p.ID, &nome, &email, &posicao, &funcao, &caracteristica,
		&overall, &jogos, &gols, &assistencias, &fotoURL)
	if err != nil {
		return nil, err
	}

	p.Nome = nome.String
	p.Email = email.String
	p.Posicao = posicao.String
	p.Funcao = funcao.String
	p.Caracteristica = caracteristica.String
	p.Overall = int(overall.Int64)
	p.Jogos = int(jogos.Int64)
	p.Gols = int(gols.Int64)
	p.Assistencias = int(assistencias.Int64)
	p.FotoURL = fotoURL.String
	return &p, nil
}

// scanMonth is the single coercion point for month documents.
func scanMonth(scanner interface{ Scan(...any) error }) (*MonthStats, error) {
	var m MonthStats
	var overall, jogos, gols, assistencias, vitorias, gs, cs, updatedAt sql.NullInt64

	err := scanner.Scan(&m.MonthID, &overall, &jogos, &gols, &assistencias, &vitorias, &gs, &cs, &updatedAt)
	if err != nil {
		return nil, err
	}

	m.Overall = int(overall.Int64)
	m.Jogos = int(jogos.Int64)
	m.Gols = int(gols.Int64)
	m.Assistencias = int(assistencias.Int64)
	m.Vitorias = int(vitorias.Int64)
	m.GS = int(gs.Int64)
	m.CS = int(cs.Int64)
	m.UpdatedAt = updatedAt.Int64
	return &m, nil
}
