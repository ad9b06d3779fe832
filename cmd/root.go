package cmd

import (
	"fmt"

	logger "github.com/PolarWolf314/sator/internal/logging"
	"github.com/PolarWolf314/sator/internal/ui"
	"github.com/PolarWolf314/sator/internal/utils"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "sator",
		Short: "Sator - a magic square transposition cipher.",
		Long: `Sator encrypts text by scattering its characters over the cells of a
magic square. The key is the square's order, the method used to build it
and the sequence of rotations and swaps that scrambled it.

Features:
  - Generate keys sized for a message, optionally sealed with a passphrase
  - Encrypt and decrypt with key files, compact tokens or raw layouts
  - Inspect the squares behind keys
  - Review an audit log of every operation

Usage:
  sator <command> [flags]

Run 'sator help <command>' for more details on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			if utils.IsTerminal() {
				fmt.Println()
				banner := figure.NewColorFigure("Sator", "alligator2", "yellow", true)
				banner.Print()
				fmt.Println()
			}
			fmt.Println("Welcome to Sator! Run " + ui.Code.Sprint("sator --help") + " to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(KeyCmd)
	RootCmd.AddCommand(squareCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(logCmd)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetEncryptCommandState()
	resetDecryptCommandState()
	resetKeyCommandState()
	resetSquareCommandState()
	resetConfigCommandState()
	resetLogCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState marks every flag of cmd and its subcommands as unset
// so Changed checks do not leak between test runs.
func resetCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}
