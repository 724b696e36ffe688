package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchDocumentStatic(t *testing.T) {
	const page = `<html><body><div class="game_summary"><p>hello</p></div></body></html>`

	var gotPath, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(page)) // nolint:errcheck
	}))
	defer server.Close()

	s := New(server.URL)
	doc, err := s.FetchDocument(context.Background(), "years/2023/week_1.htm", false)
	if err != nil {
		t.Fatalf("FetchDocument() error = %v", err)
	}

	if gotPath != "/years/2023/week_1.htm" {
		t.Errorf("requested path = %q, want /years/2023/week_1.htm", gotPath)
	}
	if gotUA != UserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, UserAgent)
	}
	if doc.Find("div.game_summary").Length() != 1 {
		t.Error("expected parsed document to contain the game_summary div")
	}
}

func TestFetchDocumentStatusErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{"ok", http.StatusOK, false},
		{"not found", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, true},
		{"rate limited", http.StatusTooManyRequests, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte("<html></html>")) // nolint:errcheck
			}))
			defer server.Close()

			s := New(server.URL)
			_, err := s.FetchDocument(context.Background(), "years/2023/week_1.htm", false)
			if (err != nil) != tt.wantErr {
				t.Errorf("FetchDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFetchDocumentConnectionRefused(t *testing.T) {
	// A server that is already closed refuses connections
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	s := New(server.URL)
	_, err := s.FetchDocument(context.Background(), "years/2023/week_1.htm", false)
	if err == nil {
		t.Fatal("expected a transport error, got nil")
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"https://example.com", "years/2023/week_1.htm", "https://example.com/years/2023/week_1.htm"},
		{"https://example.com/", "years/2023/week_1.htm", "https://example.com/years/2023/week_1.htm"},
		{"https://example.com", "/years/2023/week_1.htm", "https://example.com/years/2023/week_1.htm"},
	}

	for _, tt := range tests {
		s := New(tt.base)
		if got := s.URL(tt.path); got != tt.want {
			t.Errorf("URL(%q) with base %q = %q, want %q", tt.path, tt.base, got, tt.want)
		}
	}
}

func TestNewPFR(t *testing.T) {
	s := NewPFR()
	if s.baseURL != PFRBaseURL {
		t.Errorf("baseURL = %q, want %q", s.baseURL, PFRBaseURL)
	}
	if s.client == nil {
		t.Fatal("client should be constructed eagerly")
	}
	if s.client.Timeout != Timeout {
		t.Errorf("client timeout = %v, want %v", s.client.Timeout, Timeout)
	}
}
