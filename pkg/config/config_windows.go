//go:build windows
// +build windows

// pkg/config/config_windows.go - policy registry fallback, used when no
// Config.yaml exists on disk.

package config

import (
	"fmt"
	"strconv"

	"golang.org/x/sys/windows/registry"
)

// loadPolicyConfig loads configuration from the enterprise policy
// registry path, starting from defaults.
func loadPolicyConfig() (*Configuration, error) {
	config := GetDefaultConfig()

	key, err := registry.OpenKey(registry.LOCAL_MACHINE, PolicyRegistryPath, registry.READ)
	if err != nil {
		return nil, fmt.Errorf("opening policy registry key %s: %w", PolicyRegistryPath, err)
	}
	defer key.Close()

	loadStringFromRegistry(key, "MediaRoot", &config.MediaRoot)
	loadStringFromRegistry(key, "RuntimeDrive", &config.RuntimeDrive)
	loadStringFromRegistry(key, "DeploymentFolder", &config.DeploymentFolder)
	loadStringFromRegistry(key, "LogPath", &config.LogPath)
	loadStringFromRegistry(key, "LogLevel", &config.LogLevel)
	loadStringFromRegistry(key, "ListenAddress", &config.ListenAddress)

	loadBoolFromRegistry(key, "Debug", &config.Debug)
	loadBoolFromRegistry(key, "Verbose", &config.Verbose)

	return config, nil
}

// loadStringFromRegistry loads a string value from registry if it exists.
func loadStringFromRegistry(key registry.Key, valueName string, target *string) {
	if val, _, err := key.GetStringValue(valueName); err == nil && val != "" {
		*target = val
	}
}

// loadBoolFromRegistry loads a boolean value from registry if it exists.
// Accepts "true"/"false", "1"/"0", or DWORD 1/0.
func loadBoolFromRegistry(key registry.Key, valueName string, target *bool) {
	if val, _, err := key.GetStringValue(valueName); err == nil {
		if parsed, parseErr := strconv.ParseBool(val); parseErr == nil {
			*target = parsed
			return
		}
	}
	if val, _, err := key.GetIntegerValue(valueName); err == nil {
		*target = val != 0
	}
}
