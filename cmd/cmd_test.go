package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/workflows"
)

func onlyKeyID(t *testing.T) string {
	t.Helper()
	summaries, err := workflows.ListKeys(context.Background())
	if err != nil {
		t.Fatalf("ListKeys failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 key, got %d", len(summaries))
	}
	return summaries[0].ID
}

func TestRootShowsWelcome(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t)
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.Contains(output, "Welcome to Sator") {
		t.Errorf("Expected welcome message, got: %s", output)
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	cipherPath := filepath.Join(tempDir, "message.enc")
	plainPath := filepath.Join(tempDir, "message.txt")
	plaintext := "Meet me by the old mill at midnight."

	output, err := runCLI(t, "encrypt", plaintext, "--out", cipherPath)
	if err != nil {
		t.Fatalf("Encrypt failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "The following files were created") {
		t.Errorf("Expected created files message, got: %s", output)
	}
	if !strings.Contains(output, "sator1/") {
		t.Errorf("Expected token in output, got: %s", output)
	}

	ciphertext := readFile(t, cipherPath)
	if ciphertext == plaintext {
		t.Errorf("Ciphertext equals plaintext")
	}

	keyID := onlyKeyID(t)
	output, err = runCLI(t, "decrypt", "--key", keyID, "--in", cipherPath, "--out", plainPath)
	if err != nil {
		t.Fatalf("Decrypt failed: %v\nOutput: %s", err, output)
	}
	if got := readFile(t, plainPath); got != plaintext {
		t.Errorf("Expected %q, got %q", plaintext, got)
	}
}

func TestDecryptWithLayoutPrintsPlaintext(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "decrypt", "--layout", "8/1/6/3/5/7/4/9/2", "HAFCEGDIB")
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if strings.TrimSpace(output) != "ABCDEFGHI" {
		t.Errorf("Expected ABCDEFGHI, got %q", output)
	}
}

func TestDecryptWithTokenStripsPadding(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "decrypt", "--token", "sator1/3/siamese/95/", "_A_C____B")
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if strings.TrimSpace(output) != "ABC" {
		t.Errorf("Expected ABC, got %q", output)
	}
}

func TestEncryptWithTokenMatchesKnownVector(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "encrypt", "--token", "sator1/3/siamese/88/", "ABCDEFGHI")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !strings.HasPrefix(output, "HAFCEGDIB\n") {
		t.Errorf("Expected ciphertext HAFCEGDIB first, got %q", output)
	}
}

func TestDecryptErrors(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "decrypt", "--key", "does-not-exist", "abc")
	if !errors.Is(err, serrors.ErrKeyNotFound) {
		t.Fatalf("Expected ErrKeyNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "sator key list") {
		t.Errorf("Expected hint in error, got %q", err.Error())
	}

	_, err = runCLI(t, "decrypt", "--token", "sator1/3/siamese/95/", "short")
	if !errors.Is(err, serrors.ErrCiphertextLengthMismatch) {
		t.Errorf("Expected ErrCiphertextLengthMismatch, got %v", err)
	}

	_, err = runCLI(t, "decrypt", "--layout", "1/2/3/4", "abcd")
	if !errors.Is(err, serrors.ErrNotMagic) && !errors.Is(err, serrors.ErrInvalidLayout) {
		t.Errorf("Expected layout error, got %v", err)
	}

	_, err = runCLI(t, "decrypt", "--token", "sator1/3/siamese/95/", "")
	if !errors.Is(err, serrors.ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestEncryptPlaintextTooLongForKey(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "encrypt", "--token", "sator1/3/siamese/95/", "ten chars!")
	if !errors.Is(err, serrors.ErrPlaintextTooLong) {
		t.Fatalf("Expected ErrPlaintextTooLong, got %v", err)
	}
	if !strings.Contains(err.Error(), "--key") {
		t.Errorf("Expected hint in error, got %q", err.Error())
	}
}

func TestKeyGenerateAndShow(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	keyPath := filepath.Join(tempDir, "mine.satorkey")

	output, err := runCLI(t, "key", "generate", "--length", "16", "--transforms", "0", "--out", keyPath)
	if err != nil {
		t.Fatalf("Key generate failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Generated key") {
		t.Errorf("Expected success message, got: %s", output)
	}

	output, err = runCLI(t, "key", "show", keyPath, "--layout")
	if err != nil {
		t.Fatalf("Key show failed: %v", err)
	}
	if strings.TrimSpace(output) != "16/2/3/13/5/11/10/8/9/7/6/12/4/14/15/1" {
		t.Errorf("Unexpected layout: %q", output)
	}

	output, err = runCLI(t, "key", "show", keyPath, "--square")
	if err != nil {
		t.Fatalf("Key show failed: %v", err)
	}
	for _, want := range []string{"doubly-even", "magic constant 34", "16  2  3 13"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output: %s", want, output)
		}
	}

	_, err = runCLI(t, "key", "generate", "--length", "16", "--out", keyPath)
	if !errors.Is(err, serrors.ErrKeyExists) {
		t.Errorf("Expected ErrKeyExists, got %v", err)
	}

	_, err = runCLI(t, "key", "generate", "--length", "16", "--out", keyPath, "--force")
	if err != nil {
		t.Errorf("Expected --force to overwrite, got %v", err)
	}
}

func TestKeyGenerateRequiresLength(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "key", "generate")
	if err == nil || !strings.Contains(err.Error(), "length") {
		t.Errorf("Expected missing --length error, got %v", err)
	}
}

func TestKeyList(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "key", "list")
	if err != nil {
		t.Fatalf("Key list failed: %v", err)
	}
	if !strings.Contains(output, "No keys found") {
		t.Errorf("Expected empty message, got: %s", output)
	}

	if _, err := runCLI(t, "key", "generate", "--length", "30"); err != nil {
		t.Fatalf("Key generate failed: %v", err)
	}
	keyID := onlyKeyID(t)

	output, err = runCLI(t, "key", "list")
	if err != nil {
		t.Fatalf("Key list failed: %v", err)
	}
	if !strings.Contains(output, keyID) || !strings.Contains(output, "siamese") {
		t.Errorf("Expected key %s in list, got: %s", keyID, output)
	}
}

func TestSealedKeyWithPassphraseStdin(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	cipherPath := filepath.Join(tempDir, "sealed.enc")

	withStdin(t, "hunter2\n")
	if _, err := runCLI(t, "key", "generate", "--length", "9", "--seal", "--passphrase-stdin"); err != nil {
		t.Fatalf("Key generate failed: %v", err)
	}
	keyID := onlyKeyID(t)

	output, err := runCLI(t, "key", "list")
	if err != nil {
		t.Fatalf("Key list failed: %v", err)
	}
	if !strings.Contains(output, "sealed") {
		t.Errorf("Expected sealed marker, got: %s", output)
	}

	withStdin(t, "hunter2\n")
	if _, err := runCLI(t, "encrypt", "--key", keyID, "--passphrase-stdin", "--out", cipherPath, "secret"); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	withStdin(t, "wrong\n")
	_, err = runCLI(t, "decrypt", "--key", keyID, "--passphrase-stdin", "--in", cipherPath)
	if !errors.Is(err, serrors.ErrUnsealFailed) {
		t.Errorf("Expected ErrUnsealFailed, got %v", err)
	}

	withStdin(t, "hunter2\n")
	output, err = runCLI(t, "decrypt", "--key", keyID, "--passphrase-stdin", "--in", cipherPath)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if strings.TrimSpace(output) != "secret" {
		t.Errorf("Expected secret, got %q", output)
	}
}

func TestPassphraseStdinNeedsTextElsewhere(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "decrypt", "--key", "x", "--passphrase-stdin")
	if err == nil || !strings.Contains(err.Error(), "--passphrase-stdin") {
		t.Errorf("Expected --passphrase-stdin error, got %v", err)
	}
}

func TestSquareCommand(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "square", "--order", "3")
	if err != nil {
		t.Fatalf("Square failed: %v", err)
	}
	for _, want := range []string{"8 1 6", "3 5 7", "4 9 2", "magic constant 15"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output: %s", want, output)
		}
	}

	output, err = runCLI(t, "square", "--order", "3", "--apply", "cw", "--layout")
	if err != nil {
		t.Fatalf("Square failed: %v", err)
	}
	if strings.TrimSpace(output) != "4/3/8/9/5/1/2/7/6" {
		t.Errorf("Unexpected layout: %q", output)
	}

	_, err = runCLI(t, "square", "--order", "6")
	if !errors.Is(err, serrors.ErrUnsupportedOrder) {
		t.Errorf("Expected ErrUnsupportedOrder, got %v", err)
	}

	_, err = runCLI(t, "square", "--order", "4", "--apply", "rows1-3")
	if !errors.Is(err, serrors.ErrInvalidIndex) {
		t.Errorf("Expected ErrInvalidIndex, got %v", err)
	}
}

func TestConfigSetAndShow(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "config", "set")
	if err == nil {
		t.Errorf("Expected error when nothing is set")
	}

	output, err := runCLI(t, "config", "set", "--padding", "#", "--transforms", "5")
	if err != nil {
		t.Fatalf("Config set failed: %v", err)
	}
	if !strings.Contains(output, "Configuration saved") {
		t.Errorf("Expected saved message, got: %s", output)
	}

	output, err = runCLI(t, "config", "show", "--json")
	if err != nil {
		t.Fatalf("Config show failed: %v", err)
	}
	if !strings.Contains(output, `"padding": "#"`) || !strings.Contains(output, `"transforms": 5`) {
		t.Errorf("Expected updated defaults, got: %s", output)
	}

	if _, err := runCLI(t, "config", "set", "--padding", "ab"); err == nil {
		t.Errorf("Expected error for multi-character padding")
	}
}

func TestLogCommand(t *testing.T) {
	tempDir := setupTestEnvironment(t)

	output, err := runCLI(t, "log")
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if !strings.Contains(output, "No audit log found") {
		t.Errorf("Expected no log message, got: %s", output)
	}

	cipherPath := filepath.Join(tempDir, "m.enc")
	if _, err := runCLI(t, "encrypt", "hello world", "--out", cipherPath); err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	output, err = runCLI(t, "log")
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if !strings.Contains(output, "keygen") || !strings.Contains(output, "encrypt") {
		t.Errorf("Expected keygen and encrypt entries, got: %s", output)
	}
	if !strings.Contains(output, "testuser") {
		t.Errorf("Expected username in log, got: %s", output)
	}

	output, err = runCLI(t, "log", "--operation", "decrypt")
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	if !strings.Contains(output, "matching the filters") {
		t.Errorf("Expected no matches message, got: %s", output)
	}

	_, err = runCLI(t, "log", "--since", "yesterday")
	if !errors.Is(err, serrors.ErrInvalidDateFormat) {
		t.Errorf("Expected ErrInvalidDateFormat, got %v", err)
	}
}

func TestEncryptReadsInputFile(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	inPath := filepath.Join(tempDir, "in.txt")
	if err := os.WriteFile(inPath, []byte("ABCDEFGHI\n"), 0600); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	output, err := runCLI(t, "encrypt", "--token", "sator1/3/siamese/88/", "--in", inPath)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !strings.HasPrefix(output, "HAFCEGDIB\n") {
		t.Errorf("Expected trailing newline dropped before encrypting, got %q", output)
	}
}
