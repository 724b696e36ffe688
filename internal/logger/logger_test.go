package logger

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"
)

func TestLogger_Log(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "fetching week page",
			fields:  Fields{"week": 4},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "creating game record",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "fetch failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := tmpFile.Seek(0, 2) // Get current position

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			after, _ := tmpFile.Seek(0, 2) // Get new position
			logged := after > before

			if logged != tt.want {
				t.Errorf("log() logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogEntry_JSON(t *testing.T) {
	entry := LogEntry{
		Timestamp: "2026-01-01T00:00:00Z",
		Level:     "INFO",
		Message:   "fetching week page",
		Fields: Fields{
			"season": 2023,
			"week":   4,
		},
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded LogEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded.Message != entry.Message {
		t.Errorf("Message = %v, want %v", decoded.Message, entry.Message)
	}
}

func TestMetrics_Counter(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("schedule.games")
	m.IncrCounter("schedule.games")
	m.AddCounter("schedule.games", 14)

	snapshot := m.GetSnapshot()
	counters := snapshot["counters"].(map[string]int64)

	if counters["schedule.games"] != 16 {
		t.Errorf("Counter = %v, want 16", counters["schedule.games"])
	}
}

func TestMetrics_Timing(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("scraper.fetch", 100*time.Millisecond)
	m.RecordTiming("scraper.fetch", 300*time.Millisecond)

	snapshot := m.GetSnapshot()
	timings := snapshot["timings"].(map[string]map[string]interface{})

	stats, ok := timings["scraper.fetch"]
	if !ok {
		t.Fatal("missing scraper.fetch timing stats")
	}
	if stats["count"] != 2 {
		t.Errorf("count = %v, want 2", stats["count"])
	}
	if stats["min"] != "100ms" {
		t.Errorf("min = %v, want 100ms", stats["min"])
	}
	if stats["max"] != "300ms" {
		t.Errorf("max = %v, want 300ms", stats["max"])
	}
	if stats["average"] != "200ms" {
		t.Errorf("average = %v, want 200ms", stats["average"])
	}
}
