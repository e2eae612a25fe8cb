package config

import (
	"gopkg.in/yaml.v2"
)

// RuntimeConfigFromYAML decodes a runtime block strictly, rejecting unknown
// keys, and validates it before returning.
func RuntimeConfigFromYAML(content []byte) (*RuntimeConfig, error) {
	cfg := RuntimeConfig{}
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SchedulingConfigFromYAML(content []byte) (*SchedulingConfig, error) {
	cfg := SchedulingConfig{}
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func NodeConfigFromYAML(content []byte) (*NodeConfig, error) {
	cfg := NodeConfig{}
	if err := yaml.UnmarshalStrict(content, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
