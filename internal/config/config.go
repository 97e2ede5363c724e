// Package config loads project configuration from hue.yaml.
package config

import (
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/danielkjellid/hue/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hue.yaml"

	// EnvFileName is the optional environment file loaded alongside the
	// config.
	EnvFileName = ".env"

	// DefaultPort is the default development server port.
	DefaultPort = 8000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"
)

// Config represents the complete hue.yaml configuration.
type Config struct {
	// Name is the project name, used in the default page title pattern.
	Name string `yaml:"name,omitempty"`

	// Title is the page title pattern. A "%s" placeholder is replaced with
	// the view title; defaults to "%s | <name>".
	Title string `yaml:"title,omitempty"`

	// Static contains static file serving configuration.
	Static StaticConfig `yaml:"static,omitempty"`

	// Tailwind contains Tailwind CSS build configuration.
	Tailwind TailwindConfig `yaml:"tailwind,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `yaml:"dev,omitempty"`

	// Deploy contains asset deployment configuration.
	Deploy DeployConfig `yaml:"deploy,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// Dir is the directory built assets are written to.
	Dir string `yaml:"dir,omitempty"`

	// Prefix is the URL prefix pages use to reference assets.
	Prefix string `yaml:"prefix,omitempty"`
}

// TailwindConfig contains Tailwind CSS build settings.
type TailwindConfig struct {
	// Input is the source CSS file.
	Input string `yaml:"input,omitempty"`

	// Output is the built CSS file, relative to Static.Dir.
	Output string `yaml:"output,omitempty"`

	// Content lists glob patterns for files Tailwind scans for class
	// names, e.g. "**/*.go".
	Content []string `yaml:"content,omitempty"`

	// Version pins the standalone Tailwind binary version. Empty means
	// latest.
	Version string `yaml:"version,omitempty"`
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Host is the host to bind to.
	Host string `yaml:"host,omitempty"`

	// Port is the port to run the dev server on.
	Port int `yaml:"port,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `yaml:"watch,omitempty"`

	// Ignore contains directory names excluded from watching.
	Ignore []string `yaml:"ignore,omitempty"`
}

// DeployConfig contains asset deployment settings.
type DeployConfig struct {
	// Bucket is the S3 bucket assets are published to.
	Bucket string `yaml:"bucket,omitempty"`

	// Prefix is the key prefix within the bucket.
	Prefix string `yaml:"prefix,omitempty"`

	// Region overrides the AWS region from the environment.
	Region string `yaml:"region,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Name: "hue",
		Static: StaticConfig{
			Dir:    DefaultOutput,
			Prefix: "/static/",
		},
		Tailwind: TailwindConfig{
			Input:   "styles/input.css",
			Output:  "styles.css",
			Content: []string{"**/*.go"},
		},
		Dev: DevConfig{
			Host:   DefaultHost,
			Port:   DefaultPort,
			Watch:  []string{"."},
			Ignore: []string{".git", "node_modules", DefaultOutput},
		},
	}
}

// Load finds hue.yaml starting from dir and walking up toward the
// filesystem root, then loads it. A .env file next to the config is loaded
// into the process environment if present.
func Load(dir string) (*Config, error) {
	path, err := find(dir)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("H141").
				WithDetail("No " + ConfigFileName + " found at " + path).
				WithSuggestion("Create " + ConfigFileName + " in your project root")
		}
		return nil, errors.New("H120").Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("H120").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := loadEnv(filepath.Dir(path)); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// CSSOutputPath returns the path of the built stylesheet.
func (c *Config) CSSOutputPath() string {
	return filepath.Join(c.Static.Dir, c.Tailwind.Output)
}

// DevAddr returns the host:port the dev server binds to.
func (c *Config) DevAddr() string {
	return net.JoinHostPort(c.Dev.Host, strconv.Itoa(c.Dev.Port))
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	defaults := New()

	if c.Name == "" {
		c.Name = defaults.Name
	}
	if c.Title == "" {
		c.Title = "%s | " + c.Name
	}
	if c.Static.Dir == "" {
		c.Static.Dir = defaults.Static.Dir
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = defaults.Static.Prefix
	}
	if c.Tailwind.Input == "" {
		c.Tailwind.Input = defaults.Tailwind.Input
	}
	if c.Tailwind.Output == "" {
		c.Tailwind.Output = defaults.Tailwind.Output
	}
	if len(c.Tailwind.Content) == 0 {
		c.Tailwind.Content = defaults.Tailwind.Content
	}
	if c.Dev.Host == "" {
		c.Dev.Host = defaults.Dev.Host
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = defaults.Dev.Port
	}
	if len(c.Dev.Watch) == 0 {
		c.Dev.Watch = defaults.Dev.Watch
	}
	if len(c.Dev.Ignore) == 0 {
		c.Dev.Ignore = defaults.Dev.Ignore
	}
}

// find walks from dir toward the root looking for hue.yaml.
func find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.New("H141").Wrap(err)
	}

	for {
		candidate := filepath.Join(abs, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", errors.New("H141").
				WithDetail("No " + ConfigFileName + " found in " + dir + " or any parent directory").
				WithSuggestion("Create " + ConfigFileName + " in your project root")
		}
		abs = parent
	}
}

// loadEnv loads a .env file from dir into the process environment.
// A missing file is not an error.
func loadEnv(dir string) error {
	path := filepath.Join(dir, EnvFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.New("H142").Wrap(err)
	}
	return nil
}
