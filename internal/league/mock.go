package league

import "sync"

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreatePlayerFunc         func(input PlayerInput) (string, error)
	GetPlayerByIDFunc        func(id string) (*Player, error)
	GetPlayerByEmailFunc     func(email string) (*Player, error)
	ListPlayersByNameFunc    func() ([]Player, error)
	ListPlayersByOverallFunc func() ([]Player, error)
	UpdatePlayerFunc         func(id string, input PlayerInput) error
	UpdatePlayerPhotoFunc    func(id, fotoURL string) error
	DeletePlayerFunc         func(id string) error
	ListMonthsFunc           func(playerID string) ([]MonthStats, error)
	GetMonthStatsFunc        func(playerID, monthID string) (*MonthStats, error)
	UpsertMonthStatsFunc     func(playerID string, input MonthStats) error
	DeleteMonthStatsFunc     func(playerID, monthID string) error
	IncrementMonthStatsFunc  func(playerID, monthID string, delta MatchDelta) error
	PutMatchRecordFunc       func(playerID string, rec MatchRecord) error
	ListMonthRowsFunc        func(monthID string) ([]MonthRow, error)

	// Call records
	CreatePlayerCalls      []PlayerInput
	UpdatePlayerPhotoCalls []struct {
		ID      string
		FotoURL string
	}
	PutMatchRecordCalls []struct {
		PlayerID string
		Record   MatchRecord
	}
	IncrementMonthStatsCalls []struct {
		PlayerID string
		MonthID  string
		Delta    MatchDelta
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

var _ LeagueStore = (*MockStore)(nil)

func (m *MockStore) CreatePlayer(input PlayerInput) (string, error) {
	m.mu.Lock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, input)
	m.mu.Unlock()
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(input)
	}
	return "", nil
}

func (m *MockStore) GetPlayerByID(id string) (*Player, error) {
	if m.GetPlayerByIDFunc != nil {
		return m.GetPlayerByIDFunc(id)
	}
	return nil, nil
}

func (m *MockStore) GetPlayerByEmail(email string) (*Player, error) {
	if m.GetPlayerByEmailFunc != nil {
		return m.GetPlayerByEmailFunc(email)
	}
	return nil, nil
}

func (m *MockStore) ListPlayersByName() ([]Player, error) {
	if m.ListPlayersByNameFunc != nil {
		return m.ListPlayersByNameFunc()
	}
	return nil, nil
}

func (m *MockStore) ListPlayersByOverall() ([]Player, error) {
	if m.ListPlayersByOverallFunc != nil {
		return m.ListPlayersByOverallFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdatePlayer(id string, input PlayerInput) error {
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(id, input)
	}
	return nil
}

func (m *MockStore) UpdatePlayerPhoto(id, fotoURL string) error {
	m.mu.Lock()
	m.UpdatePlayerPhotoCalls = append(m.UpdatePlayerPhotoCalls, struct {
		ID      string
		FotoURL string
	}{id, fotoURL})
	m.mu.Unlock()
	if m.UpdatePlayerPhotoFunc != nil {
		return m.UpdatePlayerPhotoFunc(id, fotoURL)
	}
	return nil
}

func (m *MockStore) DeletePlayer(id string) error {
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(id)
	}
	return nil
}

func (m *MockStore) ListMonths(playerID string) ([]MonthStats, error) {
	if m.ListMonthsFunc != nil {
		return m.ListMonthsFunc(playerID)
	}
	return nil, nil
}

func (m *MockStore) GetMonthStats(playerID, monthID string) (*MonthStats, error) {
	if m.GetMonthStatsFunc != nil {
		return m.GetMonthStatsFunc(playerID, monthID)
	}
	return nil, nil
}

func (m *MockStore) UpsertMonthStats(playerID string, input MonthStats) error {
	if m.UpsertMonthStatsFunc != nil {
		return m.UpsertMonthStatsFunc(playerID, input)
	}
	return nil
}

func (m *MockStore) DeleteMonthStats(playerID, monthID string) error {
	if m.DeleteMonthStatsFunc != nil {
		return m.DeleteMonthStatsFunc(playerID, monthID)
	}
	return nil
}

func (m *MockStore) IncrementMonthStats(playerID, monthID string, delta MatchDelta) error {
	m.mu.Lock()
	m.IncrementMonthStatsCalls = append(m.IncrementMonthStatsCalls, struct {
		PlayerID string
		MonthID  string
		Delta    MatchDelta
	}{playerID, monthID, delta})
	m.mu.Unlock()
	if m.IncrementMonthStatsFunc != nil {
		return m.IncrementMonthStatsFunc(playerID, monthID, delta)
	}
	return nil
}

func (m *MockStore) PutMatchRecord(playerID string, rec MatchRecord) error {
	m.mu.Lock()
	m.PutMatchRecordCalls = append(m.PutMatchRecordCalls, struct {
		PlayerID string
		Record   MatchRecord
	}{playerID, rec})
	m.mu.Unlock()
	if m.PutMatchRecordFunc != nil {
		return m.PutMatchRecordFunc(playerID, rec)
	}
	return nil
}

func (m *MockStore) ListMonthRows(monthID string) ([]MonthRow, error) {
	if m.ListMonthRowsFunc != nil {
		return m.ListMonthRowsFunc(monthID)
	}
	return nil, nil
}
