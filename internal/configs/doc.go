// Package configs manages sator's user configuration and settings paths.
//
// # Locations
//
//   - Config: <os config dir>/sator/config.toml
//   - Audit log: <os config dir>/sator/audit.jsonl
//   - Keys: $XDG_DATA_HOME/sator/keys (default ~/.local/share/sator/keys)
//
// UserSatorSettings holds these paths and is initialised at startup.
// Tests override it and restore it afterwards.
//
// # User Configuration
//
// The config file stores the user UUID, generated on first use and
// recorded in audit entries, and the key generation defaults:
//
//	[user]
//	user_uuid = "..."
//
//	[defaults]
//	padding = "_"
//	transforms = 16
//
// Keys absent from the file keep their default values.
package configs
