package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/mgualv/baba-elite/internal/database"
	"github.com/mgualv/baba-elite/internal/league"
)

// Simplified config loading for the script
func loadConfig() (dbName, tursoURL, tursoToken string) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	dbName = os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "baba.db"
	}
	return dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN")
}

func main() {
	log.Info("Starting database seeder...")
	dbName, tursoURL, tursoToken := loadConfig()

	db, teardown, err := database.InitDB(dbName, tursoURL, tursoToken, "./migrations")
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	store := league.New(db)

	players := []league.PlayerInput{
		{Nome: "Rafael Souza", Email: "rafael@baba.com", Posicao: "Atacante", Caracteristica: "Finalizador", Overall: 88, Jogos: 42, Gols: 31, Assistencias: 9},
		{Nome: "Bruno Lima", Email: "bruno@baba.com", Posicao: "Zagueiro", Caracteristica: "Desarme", Overall: 84, Jogos: 40, Gols: 3, Assistencias: 4},
		{Nome: "Carlos Mendes", Email: "carlos@baba.com", Posicao: "Goleiro", Caracteristica: "Reflexo", Overall: 86, Jogos: 38, Gols: 0, Assistencias: 1},
		{Nome: "Diego Alves", Email: "diego@baba.com", Posicao: "Meia", Caracteristica: "Passe", Overall: 82, Jogos: 41, Gols: 12, Assistencias: 22},
	}

	ids := make([]string, 0, len(players))
	for _, p := range players {
		existing, err := store.GetPlayerByEmail(p.Email)
		if err != nil {
			log.Fatalf("Failed to look up player %s: %s", p.Nome, err)
		}
		if existing != nil {
			log.Info("Player already seeded", "nome", p.Nome)
			ids = append(ids, existing.ID)
			continue
		}
		id, err := store.CreatePlayer(p)
		if err != nil {
			log.Fatalf("Failed to insert player %s: %s", p.Nome, err)
		}
		ids = append(ids, id)
	}
	log.Info("Ensured seed players exist.", "count", len(ids))

	months := []string{"2026-06", "2026-07", "2026-08"}
	for i, id := range ids {
		for j, monthID := range months {
			stats := league.MonthStats{
				MonthID:      monthID,
				Overall:      players[i].Overall - j,
				Jogos:        4 + j,
				Gols:         (players[i].Gols / len(months)) + j,
				Assistencias: players[i].Assistencias / len(months),
				Vitorias:     2 + j,
			}
			if err := store.UpsertMonthStats(id, stats); err != nil {
				log.Fatalf("Failed to seed month %s for %s: %s", monthID, players[i].Nome, err)
			}
		}
	}

	fmt.Println("Seeded players:")
	for i, id := range ids {
		fmt.Printf("  %s  %s\n", id, players[i].Nome)
	}
	log.Info("Seeding complete.", "players", len(ids), "months_per_player", len(months))
}
