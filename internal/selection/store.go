package selection

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// NewStore creates a new SelectionStore.
func NewStore(db *sql.DB) SelectionStore {
	return &store{db: db}
}

// DefaultSlots returns the fixed 3-2-1 formation with empty slots.
func DefaultSlots() []Slot {
	return []Slot{
		{SlotID: SlotGol, Label: "Goleiro", Group: "GOL"},
		{SlotID: SlotZag1, Label: "Zagueiro", Group: "ZAG"},
		{SlotID: SlotZag2, Label: "Zagueiro", Group: "ZAG"},
		{SlotID: SlotMei1, Label: "Meia", Group: "MEI"},
		{SlotID: SlotMei2, Label: "Meia", Group: "MEI"},
		{SlotID: SlotAta, Label: "Atacante", Group: "ATA"},
	}
}

// DocID builds the document key, e.g. "month_2026-02" or "season_2026".
func DocID(typ Type, id string) string {
	return fmt.Sprintf("%s_%s", typ, id)
}

func defaultDoc(typ Type, id string) Doc {
	title := fmt.Sprintf("Seleção do Mês (%s)", id)
	if typ == TypeSeason {
		title = fmt.Sprintf("Seleção da Temporada (%s)", id)
	}
	return Doc{
		Type:      typ,
		ID:        id,
		Title:     title,
		Formation: "3-2-1",
		Slots:     DefaultSlots(),
	}
}

// Get reads the selection document, synthesizing the default lineup when no
// document exists yet. The default is not persisted until the first save.
func (s *store) Get(typ Type, id string) (Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		doc       Doc
		slotsJSON string
	)
	err := s.db.QueryRow(`
		SELECT type, period_id, title, formation, slots_json, updated_by, updated_at
		FROM selections WHERE id = ?`, DocID(typ, id)).
		Scan(&doc.Type, &doc.ID, &doc.Title, &doc.Formation, &slotsJSON, &doc.UpdatedBy, &doc.UpdatedAt)
	if err == sql.ErrNoRows {
		return defaultDoc(typ, id), nil
	}
	if err != nil {
		return Doc{}, fmt.Errorf("failed to get selection: %w", err)
	}

	if err := json.Unmarshal([]byte(slotsJSON), &doc.Slots); err != nil {
		log.Error("Failed to unmarshal selection slots", "error", err, "id", DocID(typ, id))
		doc.Slots = DefaultSlots()
	}
	if len(doc.Slots) == 0 {
		doc.Slots = DefaultSlots()
	}
	return doc, nil
}

// Save overwrites the whole document. There is no per-slot diffing and no
// optimistic-concurrency check; the last writer wins.
func (s *store) Save(doc Doc, updatedBy string) error {
	slotsJSON, err := json.Marshal(doc.Slots)
	if err != nil {
		return fmt.Errorf("failed to marshal selection slots: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT INTO selections (id, type, period_id, title, formation, slots_json, updated_by, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			formation = excluded.formation,
			slots_json = excluded.slots_json,
			updated_by = excluded.updated_by,
			updated_at = excluded.updated_at`,
		DocID(doc.Type, doc.ID), doc.Type, doc.ID, doc.Title, doc.Formation,
		string(slotsJSON), updatedBy, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}
