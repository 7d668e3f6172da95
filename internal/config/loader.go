package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a settings file encoding.
type Format int

// Supported formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor chooses a format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// Load reads settings from path on the OS file system.
func Load(path string) (*Settings, error) {
	return LoadFS(DefaultFS(), path)
}

// LoadFS reads settings from path on fsys, layered over the defaults.
// A missing file yields the defaults.
func LoadFS(fsys FileSystem, path string) (*Settings, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil // File doesn't exist, not an error
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	return parse(path, format, data)
}

// LoadFromReader reads settings in the given format from r, layered over
// the defaults.
func LoadFromReader(r io.Reader, format Format) (*Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	return parse("<reader>", format, data)
}

// parse decodes data over the defaults. Unknown keys are errors. Language
// entries are added to the default table rather than replacing it.
func parse(source string, format Format, data []byte) (*Settings, error) {
	s := Default()
	languages := s.Languages
	s.Languages = nil

	var err error
	switch format {
	case FormatTOML:
		err = decodeTOML(data, s)
	case FormatYAML:
		err = decodeYAML(data, s)
	default:
		return nil, fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, newParseError(source, err)
	}

	for ext, id := range s.Languages {
		languages[strings.ToLower(ext)] = id
	}
	s.Languages = languages
	return s, nil
}

func decodeTOML(data []byte, s *Settings) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(s)
}

func decodeYAML(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{
		Path:    source,
		Message: err.Error(),
		Err:     err,
	}

	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		pe.Line, pe.Column = decodeErr.Position()
	}
	return pe
}
