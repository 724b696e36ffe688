// Package game defines the Game record produced by the schedule extractor.
//
// A Game is either fully unplayed (both scores nil, Completed false) or fully
// scored (both scores present as non-negative integers); ApplyScores upholds
// that invariant. Records are identified by their season, week, and boxscore
// URL and are serialized to CSV via CSVHeader and CSVRow.
package game
