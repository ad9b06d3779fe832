package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/sator/internal/configs"
)

// TimestampFormat is RFC3339 with microseconds in UTC.
const TimestampFormat = "2006-01-02T15:04:05.000000Z"

// Operation names recorded in the log.
const (
	OpKeygen  = "keygen"
	OpEncrypt = "encrypt"
	OpDecrypt = "decrypt"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`
	User      string `json:"user,omitempty"` // OS username.
	UserUUID  string `json:"uuid,omitempty"`
	Operation string `json:"op"`

	KeyID      string `json:"key_id,omitempty"`
	Order      int    `json:"order,omitempty"`
	Length     int    `json:"length,omitempty"`     // Plaintext characters, for encrypt/decrypt.
	Transforms int    `json:"transforms,omitempty"` // For keygen.
	KeyPath    string `json:"key_path,omitempty"`
}

// Time parses the entry timestamp. The zero time is returned for malformed
// timestamps.
func (e Entry) Time() time.Time {
	t, err := time.Parse(TimestampFormat, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// LogPath returns the path to the audit log file.
func LogPath() string {
	return filepath.Join(configs.UserSatorSettings.UserConfigsPath, "audit.jsonl")
}

// Log appends an entry to the audit log. Failures are ignored: an operation
// never fails because its audit entry could not be written.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(TimestampFormat)
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry for op with the user fields filled in.
func LogWithUser(op string) Entry {
	entry := Entry{
		Operation: op,
		User:      configs.UserSatorSettings.Username,
	}

	userConfig, err := configs.LoadUserConfig()
	if err != nil {
		return entry
	}
	entry.UserUUID = userConfig.User.UUID
	return entry
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, err
	}
	return entries, nil
}
