package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"listedit/internal/logger"
)

// EnvPrefix is prepended to every environment override, e.g. LISTEDIT_LOG_LEVEL
const EnvPrefix = "LISTEDIT"

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete listedit configuration
type Config struct {
	Log       LogConfig       `mapstructure:"log" yaml:"log" json:"log"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" yaml:"clipboard" json:"clipboard"`
	Document  DocumentConfig  `mapstructure:"document" yaml:"document" json:"document"`
	Contexts  []ContextConfig `mapstructure:"contexts" yaml:"contexts" json:"contexts" jsonschema:"minItems=1,description=Editing surfaces in focus order"`
	UI        UIConfig        `mapstructure:"ui" yaml:"ui" json:"ui"`
}

type LogConfig struct {
	Dir   string `mapstructure:"dir" yaml:"dir" json:"dir" jsonschema:"description=Directory for listedit.log and journal.log"`
	Level string `mapstructure:"level" yaml:"level" json:"level" jsonschema:"enum=debug,enum=info,enum=error"`
}

type ClipboardConfig struct {
	// Mirror copies every cut or copy to the system clipboard
	Mirror bool `mapstructure:"mirror" yaml:"mirror" json:"mirror" jsonschema:"description=Mirror cut and copy to the system clipboard"`
}

type DocumentConfig struct {
	Items []string `mapstructure:"items" yaml:"items" json:"items" jsonschema:"description=Initial list contents"`
}

// ContextConfig declares one editing surface over the document
type ContextConfig struct {
	ID    string `mapstructure:"id" yaml:"id" json:"id" jsonschema:"minLength=1"`
	Title string `mapstructure:"title" yaml:"title" json:"title"`
}

type UIConfig struct {
	RowHeight int `mapstructure:"row_height" yaml:"row_height" json:"row_height" jsonschema:"minimum=1"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Log: LogConfig{
			Dir:   "logs",
			Level: "info",
		},
		Clipboard: ClipboardConfig{Mirror: true},
		Document: DocumentConfig{
			Items: []string{"alpha", "beta", "gamma"},
		},
		Contexts: []ContextConfig{
			{ID: "left", Title: "Left"},
			{ID: "right", Title: "Right"},
		},
		UI: UIConfig{RowHeight: 1},
	}
}

// DefaultPath is ~/.config/listedit/config.yaml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".listedit", "config.yaml")
	}
	return filepath.Join(home, ".config", "listedit", "config.yaml")
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("log.dir", d.Log.Dir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("clipboard.mirror", d.Clipboard.Mirror)
	v.SetDefault("document.items", d.Document.Items)
	v.SetDefault("ui.row_height", d.UI.RowHeight)

	contexts := make([]map[string]any, 0, len(d.Contexts))
	for _, c := range d.Contexts {
		contexts = append(contexts, map[string]any{"id": c.ID, "title": c.Title})
	}
	v.SetDefault("contexts", contexts)
}

// Load reads path, or the default location when path is empty. A missing
// file at the default location is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case explicit:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			logger.Debug("No config at %s, using defaults", path)
		default:
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the application cannot start with
func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if len(c.Contexts) == 0 {
		return fmt.Errorf("%w: at least one context is required", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Contexts))
	for i, ctx := range c.Contexts {
		id := strings.TrimSpace(ctx.ID)
		if id == "" {
			return fmt.Errorf("%w: contexts[%d] has an empty id", ErrInvalid, i)
		}
		if id != ctx.ID {
			return fmt.Errorf("%w: contexts[%d] id %q has surrounding whitespace", ErrInvalid, i, ctx.ID)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate context id %q", ErrInvalid, id)
		}
		seen[id] = true
	}
	if c.UI.RowHeight < 1 {
		return fmt.Errorf("%w: ui.row_height must be at least 1, got %d", ErrInvalid, c.UI.RowHeight)
	}
	return nil
}

// LogOptions converts the log section for logger.Init
func (c Config) LogOptions() logger.Options {
	level, _ := logger.ParseLevel(c.Log.Level)
	return logger.Options{Dir: c.Log.Dir, Level: level}
}
