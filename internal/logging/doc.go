// Package logger provides leveled logging for sator CLI commands.
//
// Verbosity is controlled by two flags shared by every command:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug details and errors
//
// Without flags only WarnfAlways output reaches the terminal; command
// results are printed by the command itself.
//
// # Log Methods
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// Commands create a logger in PersistentPreRun:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Generated key of order %d", key.Order)
package logger
