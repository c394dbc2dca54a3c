package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error in field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	if len(errs) == 0 {
		return "no validation errors"
	}

	var messages []string
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (errs ValidationErrors) HasErrors() bool {
	return len(errs) > 0
}

// Environment variables that override guide.yaml
const (
	EnvLanguage  = "GUIDE_LANGUAGE"
	EnvFramework = "GUIDE_FRAMEWORK"
	EnvOutputDir = "GUIDE_OUTPUT_DIR"
	EnvPort      = "GUIDE_PORT"
)

// ConfigLoadOptions provides options for loading configuration
type ConfigLoadOptions struct {
	Path              string
	EnvFile           string
	AllowMissing      bool
	ValidateStructure bool
	ApplyDefaults     bool
	WarnOnDeprecated  bool
	Quiet             bool
}

// DefaultLoadOptions returns sensible defaults for config loading
func DefaultLoadOptions() ConfigLoadOptions {
	return ConfigLoadOptions{
		Path:              "guide.yaml",
		EnvFile:           ".env",
		AllowMissing:      false,
		ValidateStructure: true,
		ApplyDefaults:     true,
		WarnOnDeprecated:  true,
		Quiet:             false,
	}
}

// ConfigManager handles configuration loading, validation, and management
type ConfigManager struct {
	options ConfigLoadOptions
}

// NewConfigManager creates a new configuration manager
func NewConfigManager(options ConfigLoadOptions) *ConfigManager {
	return &ConfigManager{
		options: options,
	}
}

// LoadConfig loads and validates the configuration
func (cm *ConfigManager) LoadConfig() (*GuideConfig, error) {
	return cm.LoadConfigFromPath(cm.options.Path)
}

// LoadConfigFromPath loads configuration from a specific path
func (cm *ConfigManager) LoadConfigFromPath(path string) (*GuideConfig, error) {
	if err := cm.loadEnvFile(); err != nil {
		return nil, err
	}

	var config *GuideConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !cm.options.AllowMissing {
			return nil, fmt.Errorf("configuration file not found: %s\n\nRun 'guide config init' to create one", path)
		}
		if !cm.options.Quiet {
			fmt.Printf("⚠️  Configuration file not found at %s, using defaults\n", path)
		}
		config = DefaultConfig()
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
		}

		config = &GuideConfig{}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %s: %w\n\nPlease check your YAML syntax", path, err)
		}
	}

	if cm.options.WarnOnDeprecated && !cm.options.Quiet {
		cm.checkDeprecatedFields(config)
	}
	migrateDeprecatedFields(config)

	if err := applyEnv(config); err != nil {
		return nil, err
	}

	if cm.options.ApplyDefaults {
		cm.applyDefaults(config)
	}

	if cm.options.ValidateStructure {
		if errs := cm.validateConfig(config); errs.HasErrors() {
			return nil, fmt.Errorf("configuration validation failed:\n%s", cm.formatValidationErrors(errs))
		}
	}

	return config, nil
}

// loadEnvFile loads the optional dotenv file. Variables already set in the
// environment win.
func (cm *ConfigManager) loadEnvFile() error {
	if cm.options.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(cm.options.EnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", cm.options.EnvFile, err)
	}
	return nil
}

func applyEnv(config *GuideConfig) error {
	if v := os.Getenv(EnvLanguage); v != "" {
		config.Language = v
	}
	if v := os.Getenv(EnvFramework); v != "" {
		config.Framework = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		config.OutputDir = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		config.Server.Port = port
	}
	return nil
}

// validateConfig performs validation on the configuration
func (cm *ConfigManager) validateConfig(config *GuideConfig) ValidationErrors {
	var errors ValidationErrors

	if !contains(ValidLanguages, config.Language) {
		errors = append(errors, ValidationError{
			Field:   "language",
			Value:   config.Language,
			Message: fmt.Sprintf("unsupported language '%s', valid options are: %s", config.Language, strings.Join(ValidLanguages, ", ")),
		})
	}

	// Unknown frameworks are allowed; they simply have no snippets
	if config.Framework == "" {
		errors = append(errors, ValidationError{
			Field:   "framework",
			Value:   config.Framework,
			Message: "framework cannot be empty",
		})
	}

	if config.OutputDir == "" {
		errors = append(errors, ValidationError{
			Field:   "output_dir",
			Value:   config.OutputDir,
			Message: "output directory cannot be empty",
		})
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Value:   config.Server.Port,
			Message: "port must be between 1 and 65535",
		})
	}

	return errors
}

// applyDefaults sets default values for missing configuration fields
func (cm *ConfigManager) applyDefaults(config *GuideConfig) {
	defaults := DefaultConfig()

	if config.Language == "" {
		config.Language = defaults.Language
	}
	if config.Framework == "" {
		config.Framework = defaults.Framework
	}
	if config.OutputDir == "" {
		config.OutputDir = defaults.OutputDir
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
}

// checkDeprecatedFields warns about deprecated configuration fields
func (cm *ConfigManager) checkDeprecatedFields(config *GuideConfig) {
	if config.TypeScript != nil {
		fmt.Printf("⚠️  Deprecated field 'typescript' is replaced by 'language'\n")
		fmt.Printf("   Consider running 'guide config init --force' to rewrite your guide.yaml\n")
	}
}

// migrateDeprecatedFields maps the legacy typescript toggle onto language
func migrateDeprecatedFields(config *GuideConfig) {
	if config.TypeScript == nil {
		return
	}
	if config.Language == "" {
		if *config.TypeScript {
			config.Language = LanguageTypeScript
		} else {
			config.Language = LanguageJavaScript
		}
	}
	config.TypeScript = nil
}

// formatValidationErrors formats validation errors in a user-friendly way
func (cm *ConfigManager) formatValidationErrors(errors ValidationErrors) string {
	var lines []string
	for i, err := range errors {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}
	return strings.Join(lines, "\n")
}

// GetConfigInfo returns information about the configuration at path
func GetConfigInfo(path string) (*ConfigInfo, error) {
	options := DefaultLoadOptions()
	options.Quiet = true
	config, err := NewConfigManager(options).LoadConfigFromPath(path)
	if err != nil {
		return nil, err
	}

	absPath, _ := filepath.Abs(path)

	return &ConfigInfo{
		Path:      absPath,
		Language:  config.Language,
		Framework: config.Framework,
		OutputDir: config.OutputDir,
		Overwrite: config.Overwrite,
		Port:      config.Server.Port,
	}, nil
}

// ConfigInfo contains summary information about a configuration
type ConfigInfo struct {
	Path      string
	Language  string
	Framework string
	OutputDir string
	Overwrite bool
	Port      int
}

// String returns a formatted string representation of config info
func (info *ConfigInfo) String() string {
	var lines []string
	lines = append(lines, "📋 Configuration Summary")
	lines = append(lines, fmt.Sprintf("   Path: %s", info.Path))
	lines = append(lines, fmt.Sprintf("   Language: %s", info.Language))
	lines = append(lines, fmt.Sprintf("   Framework: %s", info.Framework))
	lines = append(lines, fmt.Sprintf("   Output: %s (overwrite: %t)", info.OutputDir, info.Overwrite))
	lines = append(lines, fmt.Sprintf("   Server Port: %d", info.Port))

	return strings.Join(lines, "\n")
}

// LoadConfigWithDefaults loads configuration, using defaults if the file is missing
func LoadConfigWithDefaults(path string, quiet bool) (*GuideConfig, error) {
	options := DefaultLoadOptions()
	options.Path = path
	options.AllowMissing = true
	options.Quiet = quiet

	return NewConfigManager(options).LoadConfig()
}

// WriteConfig writes a configuration file as YAML
func WriteConfig(path string, config *GuideConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

const (
	LanguageJavaScript = "javascript"
	LanguageTypeScript = "typescript"
)

var ValidLanguages = []string{LanguageJavaScript, LanguageTypeScript}

type GuideConfig struct {
	Language   string       `yaml:"language"`
	Framework  string       `yaml:"framework"`
	OutputDir  string       `yaml:"output_dir"`
	Overwrite  bool         `yaml:"overwrite"`
	Server     ServerConfig `yaml:"server"`
	TypeScript *bool        `yaml:"typescript,omitempty"` // Legacy toggle, use language
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// IsTypeScript reports whether the configured language is TypeScript
func (c *GuideConfig) IsTypeScript() bool {
	return c.Language == LanguageTypeScript
}

// DefaultConfig returns the configuration used when no guide.yaml exists
func DefaultConfig() *GuideConfig {
	return &GuideConfig{
		Language:  LanguageTypeScript,
		Framework: "react",
		OutputDir: "src",
		Server: ServerConfig{
			Port: 3000,
		},
	}
}
