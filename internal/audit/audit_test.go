package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PolarWolf314/sator/internal/configs"
)

func useTempSettings(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	original := configs.UserSatorSettings
	configs.UserSatorSettings = &configs.UserSettings{
		UserKeysPath:    filepath.Join(tempDir, "keys"),
		UserConfigsPath: filepath.Join(tempDir, "config"),
		Username:        "testuser",
	}
	t.Cleanup(func() {
		configs.UserSatorSettings = original
	})
	return tempDir
}

func TestLog_CreatesFile(t *testing.T) {
	tempDir := useTempSettings(t)

	Log(Entry{Operation: OpEncrypt, KeyID: "key-1", Order: 5, Length: 20})

	logPath := filepath.Join(tempDir, "config", "audit.jsonl")
	if LogPath() != logPath {
		t.Fatalf("LogPath() = %q, expected %q", LogPath(), logPath)
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	useTempSettings(t)

	Log(Entry{Operation: OpKeygen, KeyID: "k1"})
	Log(Entry{Operation: OpEncrypt, KeyID: "k1"})
	Log(Entry{Operation: OpDecrypt, KeyID: "k1"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i, op := range []string{OpKeygen, OpEncrypt, OpDecrypt} {
		if entries[i].Operation != op {
			t.Errorf("Entry %d: expected op %q, got %q", i, op, entries[i].Operation)
		}
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	useTempSettings(t)

	before := time.Now().UTC().Add(-time.Second)
	Log(Entry{Operation: OpKeygen})

	entries, err := ReadEntries()
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d (%v)", len(entries), err)
	}
	ts := entries[0].Time()
	if ts.IsZero() {
		t.Fatalf("Timestamp %q did not parse", entries[0].Timestamp)
	}
	if ts.Before(before) {
		t.Errorf("Timestamp %v is before %v", ts, before)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	useTempSettings(t)

	Log(Entry{Operation: OpKeygen, KeyID: "k1", Transforms: 4})

	data, err := os.ReadFile(LogPath())
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &raw); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	for _, field := range []string{"length", "order", "key_path", "user"} {
		if _, ok := raw[field]; ok {
			t.Errorf("Expected %q to be omitted, got %v", field, raw)
		}
	}
	if raw["transforms"] != float64(4) {
		t.Errorf("Expected transforms 4, got %v", raw["transforms"])
	}
}

func TestLogWithUser(t *testing.T) {
	useTempSettings(t)

	config, err := configs.EnsureUserConfig()
	if err != nil {
		t.Fatal(err)
	}

	entry := LogWithUser(OpDecrypt)
	if entry.Operation != OpDecrypt || entry.User != "testuser" || entry.UserUUID != config.User.UUID {
		t.Errorf("Unexpected entry: %+v", entry)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2024-01-15T10:30:00.000000Z","op":"encrypt"}
not json
{"ts":"2024-01-16T10:30:00.000000Z","op":"decrypt"}

`)
	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Time().Day() != 16 {
		t.Errorf("Unexpected timestamp: %v", entries[1].Time())
	}
}

func TestReadEntries_NoLog(t *testing.T) {
	useTempSettings(t)

	entries, err := ReadEntries()
	if err != nil || entries != nil {
		t.Errorf("Expected no entries and no error, got %v, %v", entries, err)
	}
}
