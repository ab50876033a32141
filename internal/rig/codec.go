package rig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a scene document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned for scene files that are neither YAML nor JSON
var ErrUnsupportedFormat = errors.New("unsupported scene format")

// FormatFor picks the encoding from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Load reads and validates a scene document
func Load(path string) (*Scene, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}

	scene, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return scene, nil
}

// Save writes a scene document, choosing the encoding from the extension
func Save(path string, scene *Scene) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	data, err := Encode(scene, format)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, data)
}

// writeFileAtomic writes through a temp file in the same directory so a
// failed write never leaves a truncated scene behind
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write scene: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write scene: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write scene: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return nil
}

// Decode parses and validates a scene document
func Decode(data []byte, format Format) (*Scene, error) {
	var scene Scene

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &scene); err != nil {
			return nil, fmt.Errorf("failed to parse scene: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &scene); err != nil {
			return nil, fmt.Errorf("failed to parse scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := Validate(&scene); err != nil {
		return nil, err
	}
	return &scene, nil
}

// Encode serializes a scene document
func Encode(scene *Scene, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(scene)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize scene: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(scene, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to serialize scene: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
