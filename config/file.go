package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSettingsFile reads a YAML override file on top of base. Fields missing
// from the file keep the value from base.
//
//	player1_controller_type: gamepad:0
//	player2_key_map:
//	  jump: B
//	  shoot: N
func LoadSettingsFile(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	return ParseSettings(data, base)
}

// ParseSettings decodes YAML settings on top of base and validates the result.
func ParseSettings(data []byte, base Settings) (Settings, error) {
	s := base
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return base, fmt.Errorf("validate settings: %w", err)
	}
	return s, nil
}

// MarshalSettings encodes the persisted fields of s as YAML.
func MarshalSettings(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteSettingsFile writes s as YAML in the format LoadSettingsFile reads.
func WriteSettingsFile(path string, s Settings) error {
	data, err := MarshalSettings(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
