// Package scraper provides page fetching for the nfl-schedule tool.
//
// A Scraper is bound to one base origin and fetches pages by relative path,
// either with a plain HTTP GET (static mode, shared client with a fixed
// timeout) or by rendering the page in an ephemeral headless browser (dynamic
// mode, for pages whose content depends on client-side scripting). Fetched
// HTML is wrapped in a goquery document for querying. The schedule pages on
// pro-football-reference.com are static, so the extractor only uses static
// mode; the dynamic path is part of the fetcher's contract regardless.
package scraper
