package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tmcfar/nfl-schedule/internal/game"
	"github.com/tmcfar/nfl-schedule/internal/logger"
	"github.com/tmcfar/nfl-schedule/internal/scraper"
)

const (
	// DefaultSeason is the season scraped when no flag overrides it
	DefaultSeason = 2023
	// DefaultWeeks is the number of regular-season weeks
	DefaultWeeks = 18
)

// Extractor scrapes weekly schedule pages into Game records
type Extractor struct {
	scraper *scraper.Scraper
}

// New creates an Extractor backed by the given scraper
func New(s *scraper.Scraper) *Extractor {
	return &Extractor{scraper: s}
}

// WeekPath returns the relative path of a season's weekly schedule page.
func WeekPath(season, week int) string {
	return fmt.Sprintf("years/%d/week_%d.htm", season, week)
}

// Extract fetches every week page for the season, in ascending week order,
// and returns the accumulated Game records in page order within each week.
// Any fetch failure or unexpected markup shape aborts the whole run; there is
// no per-game recovery.
func (e *Extractor) Extract(ctx context.Context, season, weeks int) ([]*game.Game, error) {
	games := make([]*game.Game, 0)

	for week := 1; week <= weeks; week++ {
		path := WeekPath(season, week)
		logger.Info("fetching week page", logger.Fields{
			"season": season,
			"week":   week,
			"path":   path,
		})

		// Schedule pages render server-side, no browser needed
		doc, err := e.scraper.FetchDocument(ctx, path, false)
		if err != nil {
			return nil, fmt.Errorf("fetching week %d: %w", week, err)
		}

		weekGames, err := parseWeekPage(doc, season, week)
		if err != nil {
			return nil, fmt.Errorf("parsing week %d: %w", week, err)
		}

		logger.AddCounter("schedule.games", int64(len(weekGames)))
		games = append(games, weekGames...)
	}

	return games, nil
}

// parseWeekPage extracts every game-summary block on one weekly page
func parseWeekPage(doc *goquery.Document, season, week int) ([]*game.Game, error) {
	games := make([]*game.Game, 0)

	var parseErr error
	doc.Find("div.game_summary").EachWithBreak(func(i int, summary *goquery.Selection) bool {
		g, err := parseGameSummary(summary, season, week)
		if err != nil {
			parseErr = fmt.Errorf("game summary %d: %w", i, err)
			return false
		}
		games = append(games, g)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return games, nil
}

// parseGameSummary maps one game-summary block to a Game record. The block
// must contain a teams table with exactly three rows (date, away, home), two
// links in the away row (team, then the boxscore/result link) and one link in
// the home row.
func parseGameSummary(summary *goquery.Selection, season, week int) (*game.Game, error) {
	teams := summary.Find("table.teams").First()
	if teams.Length() == 0 {
		return nil, fmt.Errorf("missing teams table")
	}

	rows := teams.Find("tr")
	if rows.Length() != 3 {
		return nil, fmt.Errorf("teams table has %d rows, want 3", rows.Length())
	}
	// Row 0 is the date row; skip it
	awayRow := rows.Eq(1)
	homeRow := rows.Eq(2)

	awayLinks := awayRow.Find("a")
	if awayLinks.Length() != 2 {
		return nil, fmt.Errorf("away row has %d links, want 2", awayLinks.Length())
	}
	homeLinks := homeRow.Find("a")
	if homeLinks.Length() != 1 {
		return nil, fmt.Errorf("home row has %d links, want 1", homeLinks.Length())
	}

	awayTeam := strings.TrimSpace(awayLinks.Eq(0).Text())
	resultLink := awayLinks.Eq(1)
	homeTeam := strings.TrimSpace(homeLinks.Eq(0).Text())

	url, ok := resultLink.Attr("href")
	if !ok {
		return nil, fmt.Errorf("result link has no href")
	}

	awayScore := strings.TrimSpace(awayRow.Find("td.right").First().Text())
	homeScore := strings.TrimSpace(homeRow.Find("td.right").First().Text())

	logger.Debug("creating game record", logger.Fields{
		"away": awayTeam,
		"home": homeTeam,
		"week": week,
	})

	g := game.New(week, season, url, awayTeam, homeTeam)
	if err := g.ApplyScores(awayScore, homeScore, resultLink.Text()); err != nil {
		return nil, fmt.Errorf("%s at %s: %w", awayTeam, homeTeam, err)
	}
	return g, nil
}
