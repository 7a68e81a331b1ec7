// Package configs manages the user configuration of the affine CLI.
//
// Configuration is stored in TOML format at
// $XDG_CONFIG_HOME/affine/config.toml (os.UserConfigDir) and holds:
//
//   - Default keys used when -a and -b are not given
//   - History settings (enabled, maximum number of entries)
//   - Display settings (whether step tables are shown, how many inverse
//     probes are listed before the trace is shortened)
//
// A missing file is not an error: LoadConfig returns DefaultConfig.
//
// # Settings
//
// Paths are initialized at startup in UserAffineSettings:
//   - ConfigPath: directory holding config.toml
//   - DataPath: directory holding history.jsonl
//
// Tests override UserAffineSettings to point at temporary directories.
package configs
