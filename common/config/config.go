package config

import (
	"log/slog"
	"os"

	"github.com/crmbridge/signbridge-api/common"
	"github.com/crmbridge/signbridge-api/type/shared"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads config.yml, applies environment overrides for deployment
// secrets and validates the result. Any failure aborts startup.
func LoadConfig() {
	config := new(shared.Config)

	yml, readErr := os.ReadFile("config.yml")
	if readErr != nil {
		fatal("Failed to read config.yml", readErr)
	}

	if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
		fatal("Failed to unmarshal config.yml", unmarshalErr)
	}

	applyEnvOverrides(config)

	if validateErr := validator.New().Struct(config); validateErr != nil {
		fatal("Invalid config.yml", validateErr)
	}

	common.Config = config
}

func applyEnvOverrides(config *shared.Config) {
	if port, ok := os.LookupEnv("PORT"); ok {
		addr := ":" + port
		config.Port = &addr
	}
	if secret, ok := os.LookupEnv("WEBHOOK_SECRET_KEY"); ok {
		config.WebhookSecretKey = &secret
	}
	if clientSecret, ok := os.LookupEnv("SIGNNOW_CLIENT_SECRET"); ok {
		config.SignNowSecret = &clientSecret
	}
	if password, ok := os.LookupEnv("SIGNNOW_PASSWORD"); ok {
		config.SignNowPassword = &password
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
