package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "kaamkhoj"
)

type Config struct {
	Listen  string         `mapstructure:"listen"`
	Schema  string         `mapstructure:"schema"`
	Redis   *RedisConfig   `mapstructure:"redis"`
	Session *SessionConfig `mapstructure:"session"`
	AI      *AIConfig      `mapstructure:"ai"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SessionConfig struct {
	TTLMinutes int `mapstructure:"ttl-minutes"`
}

type AIConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	Provider       string        `mapstructure:"provider"`
	ReprobeSeconds int           `mapstructure:"reprobe-seconds"`
	MaxLogLength   int           `mapstructure:"max-log-length"`
	Ollama         *OllamaConfig `mapstructure:"ollama"`
	Gemini         *GeminiConfig `mapstructure:"gemini"`
}

type OllamaConfig struct {
	BaseURL        string  `mapstructure:"base-url"`
	Model          string  `mapstructure:"model"`
	Temperature    float64 `mapstructure:"temperature"`
	TimeoutSeconds int     `mapstructure:"timeout-seconds"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "kaamkhoj is a voice-first job seeker intake assistant for English and Hindi",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("redis.addr", "KAAMKHOJ_REDIS_ADDR"); err != nil {
		log.Fatalf("binding KAAMKHOJ_REDIS_ADDR environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is kaamkhoj.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		// An explicitly requested config file must parse.
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal(err)
		}
		return
	}

	viper.AddConfigPath(".")
	viper.SetConfigName(app + ".yaml")

	// Without an explicit flag the config file is optional; every setting
	// has a usable default.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}

	applyConfigDefaults(config)

	return config, nil
}

func applyConfigDefaults(config *Config) {
	if config.Listen == "" {
		config.Listen = "0.0.0.0:3000"
	}
	if config.Redis == nil {
		config.Redis = &RedisConfig{}
	}
	if config.Redis.Addr == "" {
		config.Redis.Addr = "localhost:6379"
	}
	if config.Session == nil {
		config.Session = &SessionConfig{}
	}
	if config.AI == nil {
		config.AI = &AIConfig{Enabled: true}
	}
	if config.AI.Provider == "" {
		config.AI.Provider = "ollama"
	}
	if config.AI.Ollama == nil {
		config.AI.Ollama = &OllamaConfig{}
	}
}
