package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kennyg/ossuary/internal/classify"
)

// Following the dot-config specification: https://dot-config.github.io/
// User config:    ~/.config/ossuary/ (or $XDG_CONFIG_HOME/ossuary/)
// Project config: .config/ossuary/ (in project root)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "ossuary"
	// ConfigFile is the settings filename inside ConfigDir
	ConfigFile = "config.yaml"
)

// Paths holds the various paths ossuary uses
type Paths struct {
	// Home is the user's home directory
	Home string

	// UserConfigDir is ~/.config/ossuary (or $XDG_CONFIG_HOME/ossuary)
	UserConfigDir string
	// UserConfigFile is ~/.config/ossuary/config.yaml
	UserConfigFile string

	// ProjectConfigDir is .config/ossuary in the current project (if exists)
	ProjectConfigDir string
	// ProjectConfigFile is .config/ossuary/config.yaml (if the dir exists)
	ProjectConfigFile string
}

// Settings control how rigs are organized
type Settings struct {
	// DefaultGroup picks "Uncategorized Bones" or "Main Bones" for unmatched bones
	DefaultGroup classify.Variant `yaml:"default_group" validate:"required,oneof=uncategorized main"`
	// HideCategories creates every collection except the default one hidden
	HideCategories bool `yaml:"hide_categories"`
	// Format is used when an output path has no recognizable extension
	Format string `yaml:"format" validate:"required,oneof=yaml json"`
}

var validate = validator.New()

// DefaultSettings returns the settings used when no config file exists
func DefaultSettings() Settings {
	return Settings{
		DefaultGroup:   classify.VariantUncategorized,
		HideCategories: true,
		Format:         "yaml",
	}
}

// GetPaths returns the standard paths for ossuary
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	userConfigDir := filepath.Join(configHome, ConfigDir)

	paths := &Paths{
		Home:           home,
		UserConfigDir:  userConfigDir,
		UserConfigFile: filepath.Join(userConfigDir, ConfigFile),
	}

	if projectConfigDir := findProjectConfig(); projectConfigDir != "" {
		paths.ProjectConfigDir = projectConfigDir
		paths.ProjectConfigFile = filepath.Join(projectConfigDir, ConfigFile)
	}

	return paths, nil
}

// findProjectConfig looks for .config/ossuary in the current directory or parents
func findProjectConfig() string {
	projectRoot := FindProjectRoot()
	if projectRoot == "" {
		return ""
	}
	candidate := filepath.Join(projectRoot, ".config", ConfigDir)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() {
		return candidate
	}
	return ""
}

// FindProjectRoot finds the project root by looking for .config/ossuary or .git
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Walk up the directory tree
	dir := cwd
	for {
		// Check for .config/ossuary
		candidate := filepath.Join(dir, ".config", ConfigDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return dir
		}

		// Also check for .git to stop at repo root
		gitDir := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitDir); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}

	return ""
}

// HasProjectConfig returns true if a project-level config exists
func (p *Paths) HasProjectConfig() bool {
	return p.ProjectConfigDir != ""
}

// Load reads user then project settings over the defaults.
// Missing files are skipped; project values win over user values.
func (p *Paths) Load() (Settings, error) {
	settings := DefaultSettings()

	for _, path := range []string{p.UserConfigFile, p.ProjectConfigFile} {
		if path == "" {
			continue
		}
		if err := mergeFile(path, &settings); err != nil {
			return Settings{}, err
		}
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// LoadSettings reads a single settings file over the defaults
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if err := mergeFile(path, &settings); err != nil {
		return Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// mergeFile decodes path into settings; keys absent from the file keep their value
func mergeFile(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// SaveSettings writes settings to path, creating parent directories
func SaveSettings(path string, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(&settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	header := "# ossuary settings\n#\n# default_group: uncategorized | main\n# format: yaml | json\n\n"
	return os.WriteFile(path, append([]byte(header), data...), 0644)
}

// Validate checks setting values
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("config: %s is required", e.Field())
	case "oneof":
		return fmt.Errorf("config: %s must be one of [%s], got %q", e.Field(), e.Param(), e.Value())
	default:
		return fmt.Errorf("config: %s failed %s", e.Field(), e.Tag())
	}
}
