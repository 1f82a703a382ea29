package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var (
	rankingMonth string
	launchDate   string
	launchGols   int
	launchAssist int
	launchWin    bool
)

func init() {
	rankingsCmd.Flags().StringVar(&rankingMonth, "month", "", "Rank one month (YYYY-MM) instead of career totals")
	launchCmd.Flags().StringVar(&launchDate, "date", "", "Match date (YYYY-MM-DD)")
	launchCmd.Flags().IntVar(&launchGols, "gols", 0, "Goals scored")
	launchCmd.Flags().IntVar(&launchAssist, "assistencias", 0, "Assists made")
	launchCmd.Flags().BoolVar(&launchWin, "vitoria", false, "Whether the match was won")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(hallCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(selectionCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the league",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings [category]",
	Short: "Show a ranking (mvp, artilheiro, garcom, goleiro, defensor, mais_jogos)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/rankings?category=" + url.QueryEscape(args[0])
		if rankingMonth != "" {
			endpoint += "&month=" + url.QueryEscape(rankingMonth)
		}
		return performGetRequest(endpoint)
	},
}

var hallCmd = &cobra.Command{
	Use:   "hall",
	Short: "Show the hall-of-fame records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/hall")
	},
}

var launchCmd = &cobra.Command{
	Use:   "launch [playerID]",
	Short: "Record a finished match for a player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"playerId":%q,"date":%q,"gols":%d,"assistencias":%d,"vitoria":%t}`,
			args[0], launchDate, launchGols, launchAssist, launchWin)
		return performPostRequest("/career/launch", body)
	},
}

var selectionCmd = &cobra.Command{
	Use:   "selection [type] [period]",
	Short: "Show the best-XI selection for a month (YYYY-MM) or season (YYYY)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := fmt.Sprintf("/selection?type=%s&period=%s", url.QueryEscape(args[0]), url.QueryEscape(args[1]))
		return performGetRequest(endpoint)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest("POST", url, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if adminEmail != "" {
		req.Header.Set("X-User-Email", adminEmail)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
