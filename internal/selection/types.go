package selection

import (
	"database/sql"
	"sync"
)

// Type scopes a selection to a month or a whole season.
type Type string

const (
	TypeMonth  Type = "month"
	TypeSeason Type = "season"
)

// SlotID identifies one of the six fixed lineup slots.
type SlotID string

const (
	SlotGol  SlotID = "GOL"
	SlotZag1 SlotID = "ZAG1"
	SlotZag2 SlotID = "ZAG2"
	SlotMei1 SlotID = "MEI1"
	SlotMei2 SlotID = "MEI2"
	SlotAta  SlotID = "ATA"
)

// Slot is one lineup position. PlayerID is a weak reference: deleting a
// player does not clear it.
type Slot struct {
	SlotID   SlotID  `json:"slotId"`
	Label    string  `json:"label"`
	Group    string  `json:"group"`
	PlayerID *string `json:"playerId"`
}

// Doc is a best-XI selection for a month (YYYY-MM) or season (YYYY).
type Doc struct {
	Type      Type   `json:"type"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Formation string `json:"formation"`
	Slots     []Slot `json:"slots"`
	UpdatedBy string `json:"updatedBy,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

// SelectionStore defines the interface for reading and saving selections.
type SelectionStore interface {
	Get(typ Type, id string) (Doc, error)
	Save(doc Doc, updatedBy string) error
}

type store struct {
	db *sql.DB
	mu sync.RWMutex
}
