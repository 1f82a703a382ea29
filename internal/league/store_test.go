package league_test

import (
	"database/sql"
	"testing"

	"github.com/mgualv/baba-elite/internal/database"
	"github.com/mgualv/baba-elite/internal/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (league.LeagueStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := league.New(db)
	return store, db, dbTeardown
}

func TestCreateAndGetPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.CreatePlayer(league.PlayerInput{
		Nome:    "Rafael",
		Email:   "  Rafael@Example.COM ",
		Posicao: "Zagueiro",
		Overall: 78,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	p, err := store.GetPlayerByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Rafael", p.Nome)
	assert.Equal(t, "rafael@example.com", p.Email, "email should be normalized on write")
	assert.Equal(t, "ZAG", p.Funcao, "role should be derived from the position at creation")
	assert.Equal(t, 78, p.Overall)

	// Lookup by email is case-insensitive because both sides normalize.
	byEmail, err := store.GetPlayerByEmail("RAFAEL@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, id, byEmail.ID)
}

func TestCreatePlayer_DuplicateEmail(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.CreatePlayer(league.PlayerInput{Nome: "A", Email: "dup@example.com"})
	require.NoError(t, err)

	_, err = store.CreatePlayer(league.PlayerInput{Nome: "B", Email: "DUP@example.com"})
	assert.ErrorIs(t, err, league.ErrDuplicateEmail)
}

func TestGetPlayer_MissingIsNotAnError(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.GetPlayerByID("nope")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = store.GetPlayerByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestListPlayersOrdering(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	for _, in := range []league.PlayerInput{
		{Nome: "Carlos", Email: "c@x.com", Overall: 70},
		{Nome: "Ana", Email: "a@x.com", Overall: 90},
		{Nome: "Bruno", Email: "b@x.com", Overall: 80},
	} {
		_, err := store.CreatePlayer(in)
		require.NoError(t, err)
	}

	byName, err := store.ListPlayersByName()
	require.NoError(t, err)
	require.Len(t, byName, 3)
	assert.Equal(t, []string{"Ana", "Bruno", "Carlos"}, []string{byName[0].Nome, byName[1].Nome, byName[2].Nome})

	byOverall, err := store.ListPlayersByOverall()
	require.NoError(t, err)
	assert.Equal(t, 90, byOverall[0].Overall)
	assert.Equal(t, 70, byOverall[2].Overall)
}

func TestListMonths_DescendingOrder(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.CreatePlayer(league.PlayerInput{Nome: "P", Email: "p@x.com"})
	require.NoError(t, err)

	for _, month := range []string{"2025-09", "2026-01", "2025-12", "2026-02"} {
		require.NoError(t, store.UpsertMonthStats(id, league.MonthStats{MonthID: month, Jogos: 1}))
	}

	months, err := store.ListMonths(id)
	require.NoError(t, err)
	require.Len(t, months, 4)

	got := make([]string, len(months))
	for i, m := range months {
		got[i] = m.MonthID
	}
	assert.Equal(t, []string{"2026-02", "2026-01", "2025-12", "2025-09"}, got)
}

func TestListMonths_EmptyIsNotAnError(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	months, err := store.ListMonths("ghost")
	require.NoError(t, err)
	assert.Empty(t, months)
}

func TestUpsertMonthStats_Idempotent(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	input := league.MonthStats{MonthID: "2026-01", Overall: 82, Jogos: 4, Gols: 7, Assistencias: 3, GS: 5, CS: 1}
	require.NoError(t, store.UpsertMonthStats("p1", input))
	require.NoError(t, store.UpsertMonthStats("p1", input))

	m, err := store.GetMonthStats("p1", "2026-01")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 82, m.Overall)
	assert.Equal(t, 4, m.Jogos)
	assert.Equal(t, 7, m.Gols)
	assert.Equal(t, 3, m.Assistencias)
	assert.Equal(t, 5, m.GS)
	assert.Equal(t, 1, m.CS)
}

func TestIncrementMonthStats(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	delta := league.MatchDelta{Gols: 2, Assistencias: 1, Vitoria: true, CS: 1}
	require.NoError(t, store.IncrementMonthStats("p1", "2026-02", delta))
	require.NoError(t, store.IncrementMonthStats("p1", "2026-02", league.MatchDelta{Gols: 1}))

	m, err := store.GetMonthStats("p1", "2026-02")
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, 2, m.Jogos)
	assert.Equal(t, 3, m.Gols)
	assert.Equal(t, 1, m.Assistencias)
	assert.Equal(t, 1, m.Vitorias)
	assert.Equal(t, 1, m.CS)
	assert.NotZero(t, m.UpdatedAt)
}

func TestPutMatchRecord_OnePerDay(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	rec := league.MatchRecord{Date: "2026-02-10", Month: "2026-02", Gols: 2, Assistencias: 1, Vitoria: true}
	require.NoError(t, store.PutMatchRecord("p1", rec))

	// Writing the same date again merges instead of duplicating.
	rec.Gols = 3
	require.NoError(t, store.PutMatchRecord("p1", rec))

	var count, gols, jogos int
	err := db.QueryRow(`SELECT COUNT(*), MAX(gols), MAX(jogos) FROM match_records WHERE player_id = 'p1'`).Scan(&count, &gols, &jogos)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, gols)
	assert.Equal(t, 1, jogos, "games is pinned to 1 per match document")
}

func TestListMonthRows_SkipsPlayersWithoutTheMonth(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	idA, err := store.CreatePlayer(league.PlayerInput{Nome: "Ana", Email: "a@x.com", Overall: 80})
	require.NoError(t, err)
	idB, err := store.CreatePlayer(league.PlayerInput{Nome: "Bia", Email: "b@x.com", Overall: 90})
	require.NoError(t, err)
	_, err = store.CreatePlayer(league.PlayerInput{Nome: "Caio", Email: "c@x.com"})
	require.NoError(t, err)

	require.NoError(t, store.UpsertMonthStats(idA, league.MonthStats{MonthID: "2026-01", Gols: 10, Overall: 75}))
	require.NoError(t, store.UpsertMonthStats(idB, league.MonthStats{MonthID: "2026-01", Gols: 4, Overall: 88}))
	require.NoError(t, store.UpsertMonthStats(idB, league.MonthStats{MonthID: "2026-02", Gols: 1}))

	rows, err := store.ListMonthRows("2026-01")
	require.NoError(t, err)
	require.Len(t, rows, 2, "Caio has no document for 2026-01 and is skipped")

	byName := map[string]league.MonthRow{}
	for _, r := range rows {
		byName[r.Player.Nome] = r
	}
	assert.Equal(t, 10, byName["Ana"].Gols)
	assert.Equal(t, 75, byName["Ana"].Overall, "row carries the month snapshot, not the profile overall")
	assert.Equal(t, 4, byName["Bia"].Gols)
}

func TestDeletePlayer_LeavesOrphanMonths(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.CreatePlayer(league.PlayerInput{Nome: "P", Email: "p@x.com"})
	require.NoError(t, err)
	require.NoError(t, store.UpsertMonthStats(id, league.MonthStats{MonthID: "2026-01", Jogos: 2}))

	require.NoError(t, store.DeletePlayer(id))

	p, err := store.GetPlayerByID(id)
	require.NoError(t, err)
	assert.Nil(t, p)

	// Month documents are not cascaded; they remain as orphans.
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM month_stats WHERE player_id = ?", id).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdatePlayerPhoto(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	id, err := store.CreatePlayer(league.PlayerInput{Nome: "P", Email: "p@x.com"})
	require.NoError(t, err)

	require.NoError(t, store.UpdatePlayerPhoto(id, "https://res.example.com/p.jpg"))

	p, err := store.GetPlayerByID(id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "https://res.example.com/p.jpg", p.FotoURL)
}
