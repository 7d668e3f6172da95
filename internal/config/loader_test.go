package config

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"lscore.toml", FormatTOML, false},
		{"lscore.yaml", FormatYAML, false},
		{"conf/LSCORE.YML", FormatYAML, false},
		{"lscore.json", 0, true},
	}

	for _, tt := range tests {
		got, err := FormatFor(tt.path)
		if tt.err {
			if !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("FormatFor(%q): expected ErrUnknownFormat, got %v", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatFor(%q) = %s, %v", tt.path, got, err)
		}
	}
}

func TestLoadTOML(t *testing.T) {
	fsys := fstest.MapFS{
		"lscore.toml": {Data: []byte(`
[editor]
use_spaces = false
spaces_per_tab = 8

[logging]
level = "debug"

[languages]
".pyw" = "py"
`)},
	}

	s, err := LoadFS(fsys, "lscore.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Editor.UseSpaces || s.Editor.SpacesPerTab != 8 {
		t.Errorf("editor = %+v", s.Editor)
	}
	if s.Editor.MaxUndoPackets != 0 {
		t.Errorf("unset keys should keep defaults, got %d", s.Editor.MaxUndoPackets)
	}
	if s.Logging.Level != "debug" {
		t.Errorf("level = %q", s.Logging.Level)
	}
	if id, _ := s.LanguageFor("x.pyw"); id != "py" {
		t.Errorf("added language = %q", id)
	}
	if id, _ := s.LanguageFor("x.go"); id != "go" {
		t.Error("default languages should survive a languages table")
	}
}

func TestLoadYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"lscore.yaml": {Data: []byte(`
editor:
  spaces_per_tab: 2
  max_undo_packets: 100
logging:
  file: /tmp/lscore.log
languages:
  .JSX: js
`)},
	}

	s, err := LoadFS(fsys, "lscore.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Editor.UseSpaces || s.Editor.SpacesPerTab != 2 || s.Editor.MaxUndoPackets != 100 {
		t.Errorf("editor = %+v", s.Editor)
	}
	if p := s.LogPath(); p == nil || *p != "/tmp/lscore.log" {
		t.Errorf("LogPath() = %v", p)
	}
	if id, _ := s.LanguageFor("App.jsx"); id != "js" {
		t.Errorf("added language = %q", id)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := LoadFS(fstest.MapFS{}, "missing.toml")
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if s.Editor != Default().Editor {
		t.Errorf("expected defaults, got %+v", s.Editor)
	}
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		data string
	}{
		{"toml syntax", "bad.toml", "[editor\nuse_spaces = true"},
		{"toml type", "bad.toml", "[editor]\nspaces_per_tab = \"four\""},
		{"toml unknown key", "bad.toml", "[editor]\ntab_size = 4"},
		{"yaml syntax", "bad.yaml", "editor: [unclosed"},
		{"yaml unknown key", "bad.yaml", "editor:\n  tab_size: 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{tt.path: {Data: []byte(tt.data)}}

			_, err := LoadFS(fsys, tt.path)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
			if pe.Path != tt.path {
				t.Errorf("Path = %q", pe.Path)
			}
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("[editor]\nuse_spaces = @"), FormatTOML)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
	if !strings.Contains(pe.Error(), "line 2") {
		t.Errorf("Error() = %q", pe.Error())
	}
}

func TestLoadFromReaderEmpty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		s, err := LoadFromReader(strings.NewReader(""), format)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", format, err)
			continue
		}
		if s.Editor != Default().Editor {
			t.Errorf("%s: expected defaults", format)
		}
	}
}
