package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"io"

	"github.com/charmbracelet/log"

	"github.com/mgualv/baba-elite/internal/career"
	"github.com/mgualv/baba-elite/internal/hall"
	"github.com/mgualv/baba-elite/internal/league"
	"github.com/mgualv/baba-elite/internal/pubsub"
	"github.com/mgualv/baba-elite/internal/rankings"
	"github.com/mgualv/baba-elite/internal/selection"
)

var seasonRe = regexp.MustCompile(`^\d{4}$`)

// respondJSON is a helper to write a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			players []league.Player
			err     error
		)
		if r.URL.Query().Get("sort") == "overall" {
			players, err = s.Store.ListPlayersByOverall()
		} else {
			players, err = s.Store.ListPlayersByName()
		}
		if err != nil {
			http.Error(w, "Failed to get players", http.StatusInternalServerError)
			log.Error("Failed to get players from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input league.PlayerInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if input.Nome == "" {
			http.Error(w, "nome is required", http.StatusBadRequest)
			return
		}

		id, err := s.Store.CreatePlayer(input)
		if err != nil {
			if errors.Is(err, league.ErrDuplicateEmail) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, "Failed to create player", http.StatusInternalServerError)
			log.Error("Failed to create player", "error", err)
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func (s *Server) GetPlayerByEmailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			http.Error(w, "email is required", http.StatusBadRequest)
			return
		}
		player, err := s.Store.GetPlayerByEmail(email)
		if err != nil {
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			log.Error("Failed to get player by email", "error", err)
			return
		}
		if player == nil {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := s.Store.GetPlayerByID(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			log.Error("Failed to get player", "error", err)
			return
		}
		if player == nil {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var input league.PlayerInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if err := s.Store.UpdatePlayer(id, input); err != nil {
			http.Error(w, "Failed to update player", http.StatusInternalServerError)
			log.Error("Failed to update player", "id", id, "error", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if err := s.Store.DeletePlayer(id); err != nil {
			http.Error(w, "Failed to delete player", http.StatusInternalServerError)
			log.Error("Failed to delete player", "id", id, "error", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func (s *Server) UploadPhotoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		player, err := s.Store.GetPlayerByID(id)
		if err != nil {
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			return
		}
		if player == nil {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		s.Metrics.IncPhotoUploadsSent()
		url, err := s.Uploader.Upload(r.Context(), header.Filename, file)
		if err != nil {
			s.Metrics.IncPhotoUploadsFailed()
			http.Error(w, fmt.Sprintf("Failed to upload photo: %v", err), http.StatusBadGateway)
			log.Error("Failed to upload photo", "id", id, "error", err)
			return
		}

		if err := s.Store.UpdatePlayerPhoto(id, url); err != nil {
			http.Error(w, "Failed to save photo URL", http.StatusInternalServerError)
			log.Error("Failed to save photo URL", "id", id, "error", err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"fotoUrl": url})
	}
}

func (s *Server) ListMonthsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		months, err := s.Store.ListMonths(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Failed to get months", http.StatusInternalServerError)
			log.Error("Failed to get months from store", "error", err)
			return
		}
		respondJSON(w, http.StatusOK, months)
	}
}

func (s *Server) GetMonthStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.Store.GetMonthStats(r.PathValue("id"), r.PathValue("month"))
		if err != nil {
			http.Error(w, "Failed to get month stats", http.StatusInternalServerError)
			log.Error("Failed to get month stats", "error", err)
			return
		}
		if stats == nil {
			http.Error(w, "Month not found", http.StatusNotFound)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) UpsertMonthStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("id")
		monthID := r.PathValue("month")
		if !career.ValidMonth(monthID) {
			http.Error(w, "invalid month id, expected YYYY-MM", http.StatusBadRequest)
			return
		}

		var input league.MonthStats
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		input.MonthID = monthID

		if err := s.Store.UpsertMonthStats(playerID, input); err != nil {
			http.Error(w, "Failed to save month stats", http.StatusInternalServerError)
			log.Error("Failed to save month stats", "player_id", playerID, "month", monthID, "error", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func (s *Server) DeleteMonthStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := r.PathValue("id")
		monthID := r.PathValue("month")
		if err := s.Store.DeleteMonthStats(playerID, monthID); err != nil {
			http.Error(w, "Failed to delete month stats", http.StatusInternalServerError)
			log.Error("Failed to delete month stats", "player_id", playerID, "month", monthID, "error", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func (s *Server) ListMonthRowsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		monthID := r.PathValue("month")
		if !career.ValidMonth(monthID) {
			http.Error(w, "invalid month id, expected YYYY-MM", http.StatusBadRequest)
			return
		}
		rows, err := s.Store.ListMonthRows(monthID)
		if err != nil {
			http.Error(w, "Failed to get month rows", http.StatusInternalServerError)
			log.Error("Failed to get month rows", "month", monthID, "error", err)
			return
		}
		respondJSON(w, http.StatusOK, rows)
	}
}

// RankingsHandler ranks either the career totals (no month parameter) or one
// month's cross-player rows.
func (s *Server) RankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat, err := rankings.ParseCategory(r.URL.Query().Get("category"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		var rows []rankings.Row
		if monthID := r.URL.Query().Get("month"); monthID != "" {
			if !career.ValidMonth(monthID) {
				http.Error(w, "invalid month id, expected YYYY-MM", http.StatusBadRequest)
				return
			}
			monthRows, err := s.Store.ListMonthRows(monthID)
			if err != nil {
				http.Error(w, "Failed to get month rows", http.StatusInternalServerError)
				log.Error("Failed to get month rows", "month", monthID, "error", err)
				return
			}
			for _, mr := range monthRows {
				rows = append(rows, rankings.MonthRowToRow(mr))
			}
		} else {
			players, err := s.Store.ListPlayersByName()
			if err != nil {
				http.Error(w, "Failed to get players", http.StatusInternalServerError)
				log.Error("Failed to get players from store", "error", err)
				return
			}
			for _, p := range players {
				rows = append(rows, rankings.CareerRow(p))
			}
		}

		respondJSON(w, http.StatusOK, rankings.Rank(cat, rows))
	}
}

func (s *Server) HallHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		records, err := hall.Compute(s.Store)
		if err != nil {
			http.Error(w, "Failed to compute hall of fame", http.StatusInternalServerError)
			log.Error("Failed to compute hall of fame", "error", err)
			return
		}
		s.Metrics.IncHallComputations()
		s.Metrics.ObserveHallComputeDuration(time.Since(start).Seconds())
		respondJSON(w, http.StatusOK, records)
	}
}

func (s *Server) LaunchGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input career.LaunchInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}

		player, err := s.Store.GetPlayerByID(input.PlayerID)
		if err != nil {
			http.Error(w, "Failed to get player", http.StatusInternalServerError)
			return
		}
		if player == nil {
			http.Error(w, "Player not found", http.StatusNotFound)
			return
		}

		monthID, err := s.Career.LaunchGame(input)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			log.Error("Failed to launch game", "player_id", input.PlayerID, "error", err)
			return
		}
		respondJSON(w, http.StatusCreated, map[string]string{"month": monthID})
	}
}

func parseSelectionPeriod(r *http.Request) (selection.Type, string, error) {
	typ := selection.Type(r.URL.Query().Get("type"))
	period := r.URL.Query().Get("period")
	switch typ {
	case selection.TypeMonth:
		if !career.ValidMonth(period) {
			return "", "", fmt.Errorf("invalid month period %q, expected YYYY-MM", period)
		}
	case selection.TypeSeason:
		if !seasonRe.MatchString(period) {
			return "", "", fmt.Errorf("invalid season period %q, expected YYYY", period)
		}
	default:
		return "", "", fmt.Errorf("unknown selection type %q", typ)
	}
	return typ, period, nil
}

func (s *Server) GetSelectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		typ, period, err := parseSelectionPeriod(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		doc, err := s.Selections.Get(typ, period)
		if err != nil {
			http.Error(w, "Failed to get selection", http.StatusInternalServerError)
			log.Error("Failed to get selection", "type", typ, "period", period, "error", err)
			return
		}
		respondJSON(w, http.StatusOK, doc)
	}
}

func (s *Server) SaveSelectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc selection.Doc
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if doc.Type != selection.TypeMonth && doc.Type != selection.TypeSeason {
			http.Error(w, fmt.Sprintf("unknown selection type %q", doc.Type), http.StatusBadRequest)
			return
		}
		if doc.ID == "" {
			http.Error(w, "id is required", http.StatusBadRequest)
			return
		}

		updatedBy := userEmailFromContext(r)
		if err := s.Selections.Save(doc, updatedBy); err != nil {
			http.Error(w, "Failed to save selection", http.StatusInternalServerError)
			log.Error("Failed to save selection", "type", doc.Type, "period", doc.ID, "error", err)
			return
		}

		// Notification is best-effort: the save already landed.
		if err := s.Notifier.SendSelectionSaved(doc, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to notify selection save", "error", err)
		}

		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

// MatchRecordedHandler receives the pub/sub push delivery for match events
// and hands the decoded event to the processor.
func (s *Server) MatchRecordedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received match recorded message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}

		ev := pubsub.MatchRecordedEvent{}
		if err := s.pubsub.ProcessMessage(rawData, &ev); err != nil {
			log.Error("Failed to decode match recorded event", "error", err)
			http.Error(w, "Invalid message payload", http.StatusBadRequest)
			return
		}
		if err := s.Processor.ProcessMatchRecorded(ev, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to process match recorded event", "error", err)
			http.Error(w, "Failed to process event", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
