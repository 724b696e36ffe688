// Package cli implements the command-line interface for nfl-schedule.
//
// The cli package provides the Cobra-based root command that wires the
// scraper, schedule extractor, and CSV serializer together: one invocation
// fetches every week page for a season and writes one complete CSV, or fails
// without producing a file. Defaults (season 2023, 18 weeks,
// 2023_nfl_schedule.csv) make the zero-flag invocation scrape a full season.
package cli
