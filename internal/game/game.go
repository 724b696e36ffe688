package game

import (
	"fmt"
	"strconv"
	"strings"
)

// FinalResultText is the result-link text that marks a finished game,
// compared case-insensitively after trimming.
const FinalResultText = "final"

// Game represents one NFL matchup scraped from a weekly schedule page.
// HomeScore and AwayScore are nil until the game has been played; Completed
// is true only when the source page marks the result as final.
type Game struct {
	Week      int    `json:"week"`
	Season    int    `json:"season"`
	URL       string `json:"url"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	Completed bool   `json:"completed"`
}

// New creates a Game with the fields that are known for every matchup,
// played or not. Scores are attached separately via ApplyScores.
func New(week, season int, url, awayTeam, homeTeam string) *Game {
	return &Game{
		Week:     week,
		Season:   season,
		URL:      url,
		AwayTeam: awayTeam,
		HomeTeam: homeTeam,
	}
}

// ApplyScores attaches scores to a freshly built Game from the raw cell text
// of the away and home rows. Both score strings are empty for games not yet
// played; in that case (and when only one is populated, which the source
// never produces for a finished game) the Game is left unplayed. When both
// are present they must parse as non-negative integers, and Completed is set
// exactly when resultText reads "final" ignoring case and surrounding
// whitespace.
func (g *Game) ApplyScores(awayText, homeText, resultText string) error {
	awayText = strings.TrimSpace(awayText)
	homeText = strings.TrimSpace(homeText)

	if awayText == "" || homeText == "" {
		return nil
	}

	awayScore, err := parseScore(awayText)
	if err != nil {
		return fmt.Errorf("parsing away score: %w", err)
	}
	homeScore, err := parseScore(homeText)
	if err != nil {
		return fmt.Errorf("parsing home score: %w", err)
	}

	g.AwayScore = &awayScore
	g.HomeScore = &homeScore
	g.Completed = strings.ToLower(strings.TrimSpace(resultText)) == FinalResultText
	return nil
}

// parseScore parses a score cell as a non-negative integer
func parseScore(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q: %w", text, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid score %q: negative", text)
	}
	return n, nil
}

// CSVHeader returns the CSV column names in serialization order.
func CSVHeader() []string {
	return []string{
		"week", "season", "url",
		"home_team", "away_team",
		"home_score", "away_score",
		"completed",
	}
}

// CSVRow returns the game's values as strings in CSVHeader order.
// Nil scores render as empty cells.
func (g *Game) CSVRow() []string {
	return []string{
		strconv.Itoa(g.Week),
		strconv.Itoa(g.Season),
		g.URL,
		g.HomeTeam,
		g.AwayTeam,
		formatScore(g.HomeScore),
		formatScore(g.AwayScore),
		strconv.FormatBool(g.Completed),
	}
}

func formatScore(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}
