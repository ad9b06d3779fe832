// Package ui provides semantic text formatting for sator's CLI output.
//
// Formatters render with color when the terminal supports it and fall back
// to text decorations when NO_COLOR is set or the output is not a TTY:
//
//	ui.Code.Sprint("sator key generate")  // `sator key generate`
//	ui.Highlight.Sprint(key.ID)           // 'f47ac10b-...'
//	ui.Secret.Sprint(key.Token())         // [sator1/5/siamese/95/cw]
//	ui.Muted.Sprint("optional")           // (optional)
//
// FormatGrid renders a magic square for `sator square` and `sator key show`.
package ui
