package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix starts every environment variable the settings read.
const EnvPrefix = "LSCORE_"

// LookupFunc reads one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// envSetters maps environment variables to the settings they override.
var envSetters = map[string]func(s *Settings, value string) error{
	EnvPrefix + "USE_SPACES": func(s *Settings, value string) error {
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		s.Editor.UseSpaces = b
		return nil
	},
	EnvPrefix + "SPACES_PER_TAB": func(s *Settings, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		s.Editor.SpacesPerTab = n
		return nil
	},
	EnvPrefix + "MAX_UNDO_PACKETS": func(s *Settings, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		s.Editor.MaxUndoPackets = n
		return nil
	},
	EnvPrefix + "LOG_LEVEL": func(s *Settings, value string) error {
		s.Logging.Level = strings.ToLower(value)
		return nil
	},
	EnvPrefix + "LOG_FILE": func(s *Settings, value string) error {
		s.Logging.File = value
		return nil
	},
}

// ApplyEnv overrides settings from environment variables read through
// lookup. Unset variables leave settings untouched; empty values count as
// set.
func (s *Settings) ApplyEnv(lookup LookupFunc) error {
	for _, name := range EnvVariables() {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		if err := envSetters[name](s, value); err != nil {
			return fmt.Errorf("%s=%q: %w: %v", name, value, ErrInvalidValue, err)
		}
	}
	return nil
}

// EnvVariables returns the recognized variable names in a stable order.
func EnvVariables() []string {
	return []string{
		EnvPrefix + "USE_SPACES",
		EnvPrefix + "SPACES_PER_TAB",
		EnvPrefix + "MAX_UNDO_PACKETS",
		EnvPrefix + "LOG_LEVEL",
		EnvPrefix + "LOG_FILE",
	}
}

// parseBool accepts the spellings strconv.ParseBool does plus yes/no and
// on/off.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
