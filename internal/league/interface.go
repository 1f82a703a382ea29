package league

// LeagueStore defines the interface for interacting with the league's data.
type LeagueStore interface {
	CreatePlayer(input PlayerInput) (string, error)
	GetPlayerByID(id string) (*Player, error)
	GetPlayerByEmail(email string) (*Player, error)
	ListPlayersByName() ([]Player, error)
	ListPlayersByOverall() ([]Player, error)
	UpdatePlayer(id string, input PlayerInput) error
	UpdatePlayerPhoto(id, fotoURL string) error
	DeletePlayer(id string) error

	ListMonths(playerID string) ([]MonthStats, error)
	GetMonthStats(playerID, monthID string) (*MonthStats, error)
	UpsertMonthStats(playerID string, input MonthStats) error
	DeleteMonthStats(playerID, monthID string) error
	IncrementMonthStats(playerID, monthID string, delta MatchDelta) error
	PutMatchRecord(playerID string, rec MatchRecord) error

	ListMonthRows(monthID string) ([]MonthRow, error)
}
