// Package schedule extracts Game records from pro-football-reference weekly
// schedule pages.
//
// Each weekly page repeats a game-summary block per matchup. Inside every
// block sits a teams table with exactly three rows: date, away team, home
// team. The away row carries two links (team page, then the boxscore link
// whose text marks game status and whose href identifies the game) and the
// home row carries one. Scores live in right-aligned cells and are empty
// until the game has been played. Any deviation from that shape fails the
// entire extraction; there is no per-game recovery.
package schedule
