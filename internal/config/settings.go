package config

import (
	"errors"
	"maps"
	"path/filepath"
	"strings"

	"github.com/dshills/lscore/internal/engine/buffer"
)

// Settings is the complete lscore configuration.
type Settings struct {
	Editor    EditorSettings    `toml:"editor" yaml:"editor"`
	Logging   LoggingSettings   `toml:"logging" yaml:"logging"`
	Languages map[string]string `toml:"languages" yaml:"languages"`
}

// EditorSettings configures new documents.
type EditorSettings struct {
	UseSpaces      bool `toml:"use_spaces" yaml:"use_spaces"`
	SpacesPerTab   int  `toml:"spaces_per_tab" yaml:"spaces_per_tab"`
	MaxUndoPackets int  `toml:"max_undo_packets" yaml:"max_undo_packets"` // 0 is unbounded
}

// LoggingSettings configures the log backend.
type LoggingSettings struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"` // empty logs to stderr
}

// levels maps level names to commonlog verbosity.
var levels = map[string]int{
	"none":     -4,
	"critical": -3,
	"error":    -2,
	"warning":  -1,
	"notice":   0,
	"info":     1,
	"debug":    2,
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Editor: EditorSettings{
			UseSpaces:      true,
			SpacesPerTab:   buffer.DefaultSpacesPerTab,
			MaxUndoPackets: 0,
		},
		Logging: LoggingSettings{
			Level: "warning",
		},
		Languages: defaultLanguages(),
	}
}

func defaultLanguages() map[string]string {
	return map[string]string{
		".rs":   "rs",
		".cpp":  "cpp",
		".cc":   "cpp",
		".cxx":  "cpp",
		".hpp":  "cpp",
		".h":    "cpp",
		".java": "java",
		".js":   "js",
		".mjs":  "js",
		".cjs":  "js",
		".py":   "py",
		".ts":   "ts",
		".tsx":  "tsx",
		".sh":   "sh",
		".bash": "sh",
		".go":   "go",
	}
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	c := *s
	c.Languages = maps.Clone(s.Languages)
	return &c
}

// Validate checks every setting and reports all failures together.
func (s *Settings) Validate() error {
	var errs []error

	if s.Editor.SpacesPerTab < 1 {
		errs = append(errs, &ValidationError{
			Path:    "editor.spaces_per_tab",
			Value:   s.Editor.SpacesPerTab,
			Message: "must be at least 1",
		})
	}
	if s.Editor.MaxUndoPackets < 0 {
		errs = append(errs, &ValidationError{
			Path:    "editor.max_undo_packets",
			Value:   s.Editor.MaxUndoPackets,
			Message: "must not be negative",
		})
	}
	if _, ok := levels[strings.ToLower(s.Logging.Level)]; !ok {
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Value:   s.Logging.Level,
			Message: "must be one of none, critical, error, warning, notice, info, debug",
		})
	}
	for ext, id := range s.Languages {
		if !strings.HasPrefix(ext, ".") || id == "" {
			errs = append(errs, &ValidationError{
				Path:    "languages." + ext,
				Value:   id,
				Message: "extension must start with '.' and map to a language id",
			})
		}
	}

	return errors.Join(errs...)
}

// Indentation returns the editor indentation policy.
func (s *Settings) Indentation() buffer.Indentation {
	if s.Editor.UseSpaces {
		return buffer.Spaces(s.Editor.SpacesPerTab)
	}
	return buffer.Tabs(s.Editor.SpacesPerTab)
}

// LanguageFor returns the language id for path, chosen by extension.
func (s *Settings) LanguageFor(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	id, ok := s.Languages[ext]
	return id, ok
}

// Verbosity returns the commonlog verbosity for the configured level.
// Unknown levels map to the default warning level.
func (s *Settings) Verbosity() int {
	if v, ok := levels[strings.ToLower(s.Logging.Level)]; ok {
		return v
	}
	return levels["warning"]
}

// LogPath returns the log file path, or nil to log to stderr.
func (s *Settings) LogPath() *string {
	if s.Logging.File == "" {
		return nil
	}
	path := s.Logging.File
	return &path
}
