package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"

	"github.com/wellmind-app/backend/internal/auth"
	"github.com/wellmind-app/backend/internal/gormw"
)

func TestLoadConfigSuccess(t *testing.T) {
	// Create a temporary directory
	tmpDir := t.TempDir()

	// Create a temporary config file path
	tmpConfigFile := filepath.Join(tmpDir, "config.yaml")

	// Sample valid configuration data
	sampleConfig := &Config{
		Port:    8080,
		GinMode: "debug",
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Auth: auth.Config{
			PrivateKeyPEM:   "testprivatekeypem",
			Issuer:          "http://localhost:8080",
			AccessTokenTTL:  900,
			RefreshTokenTTL: 604800,
		},
		DB: gormw.Config{
			DSN:                  "testdsn",
			DisableAutomaticPing: false,
			MaxOpenConns:         10,
			MaxIdleConns:         5,
			LogLevel:             2, // gormlog.Error
		},
	}

	// Marshal the sample config to YAML
	configData, err := yaml.Marshal(&sampleConfig)
	assert.NoError(t, err)

	// Write the YAML data to the temporary file
	err = os.WriteFile(tmpConfigFile, configData, 0644)
	assert.NoError(t, err)

	// Load the config from the temporary file
	loadedConfig := LoadConfig(tmpConfigFile)

	// Assert that the loaded config matches the sample config
	assert.NotNil(t, loadedConfig)
	assert.Equal(t, sampleConfig, loadedConfig)
}

func TestAuthConfigTTLDefaults(t *testing.T) {
	cfg := &auth.Config{
		PrivateKeyPEM: "pem",
		Issuer:        "issuer",
	}
	cfg.Validate()

	assert.Equal(t, 900, cfg.AccessTokenTTL)
	assert.Equal(t, 604800, cfg.RefreshTokenTTL)
}
