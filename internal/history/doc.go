// Package history records encrypt and decrypt operations.
//
// Every successful encryption or decryption can be appended to a JSON
// Lines file, one entry per line, so that earlier results can be listed,
// deleted individually or cleared. Each entry carries a random UUID and a
// UTC timestamp.
//
// # Log Format
//
//	{"id":"1b4e28ba-...","ts":"2026-01-02T15:04:05.000000Z","type":"encrypt","input":"HELLO","output":"RCLLA","a":5,"b":8}
//
// Malformed lines are skipped when reading so one bad write does not hide
// the rest of the history.
//
// # Usage
//
//	store := history.NewStore(configs.HistoryFilePath())
//	entry, err := store.Append(history.Entry{Type: history.TypeEncrypt, ...})
//	entries, err := store.List() // newest first
package history
