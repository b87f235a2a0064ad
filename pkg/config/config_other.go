//go:build !windows
// +build !windows

package config

import "errors"

// loadPolicyConfig has no registry to read outside Windows.
func loadPolicyConfig() (*Configuration, error) {
	return nil, errors.New("policy configuration is only available on Windows")
}
