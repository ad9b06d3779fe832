// Package audit records sator operations in a JSON Lines log.
//
// Each key generation, encryption and decryption appends one line to
// <config dir>/sator/audit.jsonl:
//
//	{"ts":"2024-01-15T10:30:00.123456Z","user":"alice","uuid":"...","op":"encrypt","key_id":"...","order":7,"length":42}
//
// Text and key material are never logged, only sizes and key IDs.
// Writing the log is best effort; read it back with ReadEntries.
package audit
