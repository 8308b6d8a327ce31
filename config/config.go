package config

import (
	"errors"
	"strings"

	"github.com/entitylens/entitylens/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing config file is not an error: entitylens must run with zero
// setup, so every key has a default and the file only overrides.
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetConfigType("yaml")

	setDefaults()

	viper.SetEnvPrefix("ENTITYLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("no config file found, using defaults")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.NLP.ServerURL == "" {
		return nil, errors.New("nlp.server_url must be set")
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("nlp.server_url", "http://localhost:5557")
	viper.SetDefault("analysis.language", "en")
	viper.SetDefault("analysis.top_entities", 10)
	viper.SetDefault("analysis.top_display", 5)
	viper.SetDefault("output.results_file", "ner_results.csv")
	viper.SetDefault("output.report_file", "ner_summary_report.txt")
	viper.SetDefault("log.level", "info")
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
