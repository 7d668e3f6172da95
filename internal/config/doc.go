// Package config provides the settings system for lscore.
//
// Settings come from three places, later ones overriding earlier ones:
//
//	┌─────────────────────────────┐
//	│  3. Environment Variables   │  ← LSCORE_* , highest priority
//	├─────────────────────────────┤
//	│  2. Settings File           │  ← TOML or YAML, chosen by extension
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg, err := config.Load("lscore.toml")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	d := engine.FromText(text,
//	    engine.WithIndentation(cfg.Indentation()),
//	    engine.WithMaxUndoPackets(cfg.Editor.MaxUndoPackets),
//	)
//
// A missing settings file is not an error; Load returns the defaults.
//
// # File Format
//
//	[editor]
//	use_spaces = false
//	spaces_per_tab = 8
//	max_undo_packets = 500
//
//	[logging]
//	level = "debug"
//	file = "/tmp/lscore.log"
//
//	[languages]
//	".pyw" = "py"
//
// The YAML form uses the same keys.
package config
