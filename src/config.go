package src

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"topologia/src/model"
)

type Config struct {
	LogConfig     model.LogConfig     `envconfig:"log"`
	ServerConfig  model.ServerConfig  `envconfig:"server"`
	StorageConfig model.StorageConfig `envconfig:"storage"`
	DiagramConfig model.DiagramConfig `envconfig:"diagram"`

	// CatalogPath overrides the embedded catalog document when set
	CatalogPath string `envconfig:"catalog_path"`
}

func LoadConfig() (*Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %v", err)
	}

	return &config, nil
}
