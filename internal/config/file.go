package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML defaults-file schema (see --defaults-file). It mirrors
// the flag surface so credentials and site defaults can live on disk; flags
// always win over file values.
type File struct {
	Connection struct {
		Host           string `yaml:"host"`
		Port           int    `yaml:"port"`
		Username       string `yaml:"username"`
		Password       string `yaml:"password"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"connection"`
	Check struct {
		ExpectedClusterSize int `yaml:"expected_cluster_size"`
	} `yaml:"check"`
	Snapshot struct {
		Path string `yaml:"path"`
	} `yaml:"snapshot"`
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse defaults file %s: %w", path, err)
	}
	return &f, nil
}
