package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/billie-coop/swipetabs/internal/tui/components/tabstrip"
	"github.com/billie-coop/swipetabs/internal/tui/styles"
)

const (
	// DirName is the project-local data directory.
	DirName = ".swipetabs"

	configFile = "config.toml"
	stateFile  = "state.json"
	logFile    = "swipetabs.log"
)

// Config represents the swipetabs configuration
type Config struct {
	Strip tabstrip.StripConfig `toml:"strip"`
	Pager PagerConfig          `toml:"pager"`
	UI    UIConfig             `toml:"ui"`
}

// PagerConfig controls page turns.
type PagerConfig struct {
	AnimationFrames int `toml:"animation_frames"`
	FrameIntervalMs int `toml:"frame_interval_ms"`
}

// FrameInterval is the delay between animation frames.
func (p PagerConfig) FrameInterval() time.Duration {
	return time.Duration(p.FrameIntervalMs) * time.Millisecond
}

// UIConfig controls the chrome around the strip and pages.
type UIConfig struct {
	Theme      string `toml:"theme"`
	ShowHelp   bool   `toml:"show_help"`
	ShowStatus bool   `toml:"show_status"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Strip: tabstrip.DefaultStripConfig(),
		Pager: PagerConfig{
			AnimationFrames: 8,
			FrameIntervalMs: 16,
		},
		UI: UIConfig{
			Theme:      styles.DefaultThemeName,
			ShowHelp:   true,
			ShowStatus: true,
		},
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Strip.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("strip: %w", err))
	}
	if c.Pager.AnimationFrames < 0 {
		errs = append(errs, fmt.Errorf("pager: animation_frames must not be negative, got %d", c.Pager.AnimationFrames))
	}
	if c.Pager.AnimationFrames > 0 && c.Pager.FrameIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("pager: frame_interval_ms must be positive, got %d", c.Pager.FrameIntervalMs))
	}
	if strings.TrimSpace(c.UI.Theme) == "" {
		errs = append(errs, errors.New("ui: theme must not be empty"))
	}
	return errors.Join(errs...)
}

// Manager handles configuration loading and saving
type Manager struct {
	projectPath string
	dir         string
	config      *Config
}

// NewManager creates a manager for the pages in projectPath.
func NewManager(projectPath string) *Manager {
	return &Manager{
		projectPath: projectPath,
		dir:         filepath.Join(projectPath, DirName),
		config:      DefaultConfig(),
	}
}

func (m *Manager) Dir() string       { return m.dir }
func (m *Manager) Path() string      { return filepath.Join(m.dir, configFile) }
func (m *Manager) StatePath() string { return filepath.Join(m.dir, stateFile) }
func (m *Manager) LogPath() string   { return filepath.Join(m.dir, logFile) }

// Init creates the data directory and its .gitignore.
func (m *Manager) Init() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", DirName, err)
	}
	if err := m.ensureGitignore(); err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}
	return nil
}

// Load reads the configuration from disk, writing the defaults on first use.
// On error the previously loaded configuration stays in effect.
func (m *Manager) Load() error {
	if err := m.Init(); err != nil {
		return err
	}
	if _, err := os.Stat(m.Path()); errors.Is(err, os.ErrNotExist) {
		m.config = DefaultConfig()
		return m.Save()
	}

	config := DefaultConfig()
	meta, err := toml.DecodeFile(m.Path(), config)
	if err != nil {
		return fmt.Errorf("failed to parse config TOML: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	expandEnvVars(config)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", m.Path(), err)
	}
	m.config = config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(m.config); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(m.Path(), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates one setting by its dotted key, such as "strip.text_color",
// validates the result and saves it.
func (m *Manager) Set(key, value string) error {
	updated := *m.config
	field, err := lookup(reflect.ValueOf(&updated).Elem(), key)
	if err != nil {
		return err
	}
	if err := setValue(field, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := updated.Validate(); err != nil {
		return err
	}
	m.config = &updated
	return m.Save()
}

// Keys lists every settable key in file order.
func Keys() []string {
	var keys []string
	walk(reflect.ValueOf(DefaultConfig()).Elem(), func(key string, _ reflect.Value) {
		keys = append(keys, key)
	})
	return keys
}

// Value returns the current value of a dotted key as text.
func (m *Manager) Value(key string) (string, error) {
	field, err := lookup(reflect.ValueOf(m.config).Elem(), key)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(field.Interface()), nil
}

// walk calls fn for every leaf field of a two-level config struct.
func walk(v reflect.Value, fn func(key string, field reflect.Value)) {
	for i := 0; i < v.NumField(); i++ {
		section := tomlName(v.Type().Field(i))
		sv := v.Field(i)
		for j := 0; j < sv.NumField(); j++ {
			fn(section+"."+tomlName(sv.Type().Field(j)), sv.Field(j))
		}
	}
}

func lookup(v reflect.Value, key string) (reflect.Value, error) {
	var found reflect.Value
	walk(v, func(k string, field reflect.Value) {
		if k == key {
			found = field
		}
	})
	if !found.IsValid() {
		return reflect.Value{}, fmt.Errorf("unknown config key: %s", key)
	}
	return found, nil
}

func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "" {
		return strings.ToLower(f.Name)
	}
	return name
}

func setValue(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		field.SetInt(int64(n))
	case reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported setting type %s", field.Kind())
	}
	return nil
}

// ensureGitignore creates a .gitignore in .swipetabs/ with smart defaults
func (m *Manager) ensureGitignore() error {
	gitignorePath := filepath.Join(m.dir, ".gitignore")
	if _, err := os.Stat(gitignorePath); !errors.Is(err, os.ErrNotExist) {
		return nil
	}

	gitignoreContent := `# swipetabs data directory .gitignore
#
# config.toml is meant to be shared; state and logs are per user.

*.log
*.tmp
state.json

!config.toml
!.gitignore
`
	return os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644)
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandEnvVars expands environment variables in every string setting.
func expandEnvVars(config *Config) {
	walk(reflect.ValueOf(config).Elem(), func(_ string, field reflect.Value) {
		if field.Kind() == reflect.String {
			field.SetString(expandString(field.String()))
		}
	})
}

// expandString expands environment variables in a string
// Supports $VAR and ${VAR} syntax
func expandString(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match
	})
}

// KnownKey reports whether key is a settable dotted key.
func KnownKey(key string) bool {
	return slices.Contains(Keys(), key)
}
