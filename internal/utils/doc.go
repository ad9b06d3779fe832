// Package utils provides shared helpers for the sator CLI.
//
//   - I/O: ReadStdin, ReadInput (file or "-" for stdin), ReadLine
//   - Terminal: ReadPassphrase (hidden prompt on the controlling TTY),
//     IsTerminal
//   - Strings: FormatPaths, TrimFinalNewline
//   - System: GetUsername
package utils
