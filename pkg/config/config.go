// pkg/config/config.go - configuration settings for the EDS deployment tools.

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const ConfigPath = `C:\ProgramData\EDS\Config.yaml`

// Policy registry path for enterprise-managed configuration.
const PolicyRegistryPath = `SOFTWARE\EDS\Config`

// Configuration holds the configurable options for the EDS tools in
// YAML format.
type Configuration struct {
	MediaRoot        string `yaml:"MediaRoot"`        // Mounted installation media root, e.g. E:\
	RuntimeDrive     string `yaml:"RuntimeDrive"`     // Target system volume, e.g. C:
	DeploymentFolder string `yaml:"DeploymentFolder"` // Deployment folder name on media and under Windows\Setup
	LogPath          string `yaml:"LogPath"`          // Directory for log files
	LogLevel         string `yaml:"LogLevel"`
	Debug            bool   `yaml:"Debug"`
	Verbose          bool   `yaml:"Verbose"`

	// ListenAddress is the bind address of the build trigger service.
	ListenAddress string `yaml:"ListenAddress"`
}

// LoadConfig loads the configuration from the YAML file. If the file
// doesn't exist, it falls back to policy registry settings.
func LoadConfig() (*Configuration, error) {
	if _, err := os.Stat(ConfigPath); os.IsNotExist(err) {
		config, policyErr := loadPolicyConfig()
		if policyErr == nil {
			log.Printf("Loaded configuration from policy registry settings")
			return config, nil
		}
		return nil, fmt.Errorf("configuration file does not exist and policy fallback failed: %w", err)
	}

	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	config := GetDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing configuration file: %w", err)
	}
	applyDefaults(config)
	return config, nil
}

// LoadConfigFrom loads the configuration from an explicit path, for
// callers overriding the fixed location on the command line.
func LoadConfigFrom(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file %s: %w", path, err)
	}
	config := GetDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing configuration file %s: %w", path, err)
	}
	applyDefaults(config)
	return config, nil
}

// SaveConfig saves the current configuration to the YAML file.
func SaveConfig(config *Configuration) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("serializing configuration: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(ConfigPath), 0755); err != nil {
		return fmt.Errorf("creating configuration directory: %w", err)
	}
	if err := os.WriteFile(ConfigPath, data, 0644); err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// GetDefaultConfig provides default configuration values.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		RuntimeDrive:     "C:",
		DeploymentFolder: "EDS",
		LogPath:          `C:\ProgramData\EDS\Logs`,
		LogLevel:         "INFO",
		ListenAddress:    "127.0.0.1:8322",
	}
}

// applyDefaults fills in empty fields a partial YAML file left out.
func applyDefaults(config *Configuration) {
	defaults := GetDefaultConfig()
	if config.RuntimeDrive == "" {
		config.RuntimeDrive = defaults.RuntimeDrive
	}
	if config.DeploymentFolder == "" {
		config.DeploymentFolder = defaults.DeploymentFolder
	}
	if config.LogPath == "" {
		config.LogPath = defaults.LogPath
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.ListenAddress == "" {
		config.ListenAddress = defaults.ListenAddress
	}
}
