package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PolarWolf314/sator/internal/audit"
	serrors "github.com/PolarWolf314/sator/internal/errors"
	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logKeyID     string
	logSince     string
	logUntil     string
	logOneline   bool
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logKeyID, "key", "", "filter by key ID prefix")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "compact one-line format")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logReverse = false
	logOperation = ""
	logKeyID = ""
	logSince = ""
	logUntil = ""
	logOneline = false
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of key generation, encryption and decryption.

Examples:
  sator log                              # View full log
  sator log -n 10                        # Last 10 entries
  sator log --reverse                    # Most recent first
  sator log --operation encrypt,decrypt  # Filter by operation
  sator log --key 3f2c                   # Filter by key ID
  sator log --since 2026-01-01           # Filter by date
  sator log --json                       # JSON output`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	opts := workflows.LogOptions{
		Limit:      logLimit,
		Reverse:    logReverse,
		Operations: logOperation,
		KeyID:      logKeyID,
		Since:      logSince,
		Until:      logUntil,
	}

	result, err := workflows.Log(context.Background(), opts)
	if errors.Is(err, serrors.ErrNoAuditLog) {
		fmt.Println(ui.Info.Sprint("ℹ") + " No audit log found. Operations are logged once you generate a key or encrypt something.")
		return nil
	}
	if err != nil {
		return formatError(err)
	}

	Logger.Debugf("Parsed %d entries from audit log", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		if result.TotalEntriesBeforeFilter == 0 {
			fmt.Println("No audit log entries found.")
		} else {
			fmt.Println("No audit log entries found matching the filters.")
		}
		return nil
	}

	switch {
	case logJSON:
		return outputLogJSON(result.Entries)
	case logOneline:
		outputLogOneline(result.Entries)
	default:
		outputLogDefault(result.Entries)
	}
	return nil
}

func outputLogJSON(entries []audit.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputLogOneline(entries []audit.Entry) {
	for _, e := range entries {
		fmt.Printf("%s %s %s %s\n", workflows.FormatDate(e.Timestamp), logUser(e), e.Operation, shortID(e.KeyID))
	}
}

func outputLogDefault(entries []audit.Entry) {
	for _, e := range entries {
		fmt.Printf("%-19s  %-16s  %-8s  %s\n", formatDateTime(e), logUser(e), e.Operation, logDetails(e))
	}
}

func formatDateTime(e audit.Entry) string {
	t := e.Time()
	if t.IsZero() {
		return e.Timestamp
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

func logUser(e audit.Entry) string {
	if e.User != "" {
		return e.User
	}
	if e.UserUUID != "" {
		return shortID(e.UserUUID)
	}
	return "-"
}

func logDetails(e audit.Entry) string {
	details := ""
	if e.KeyID != "" {
		details = "key " + shortID(e.KeyID) + " "
	}
	details += fmt.Sprintf("order %d", e.Order)
	switch e.Operation {
	case audit.OpKeygen:
		details += fmt.Sprintf(", %d transforms", e.Transforms)
	default:
		details += fmt.Sprintf(", %d chars", e.Length)
	}
	return details
}

// shortID returns the first block of a UUID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	if id == "" {
		return "-"
	}
	return id
}
