package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kaamkhoj/kaamkhoj/internal/ai"
	"github.com/kaamkhoj/kaamkhoj/internal/ai/gemini"
	"github.com/kaamkhoj/kaamkhoj/internal/ai/ollama"
	"github.com/kaamkhoj/kaamkhoj/internal/conversation"
	"github.com/kaamkhoj/kaamkhoj/internal/engine"
	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/logger"
	"github.com/kaamkhoj/kaamkhoj/internal/profile"
	"github.com/kaamkhoj/kaamkhoj/internal/secrets"
	"github.com/kaamkhoj/kaamkhoj/internal/server"
	"github.com/kaamkhoj/kaamkhoj/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the kaamkhoj intake HTTP server",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address, host:port")
	serveCmd.Flags().String("schema", "", "intake profile schema version (v1 or v2)")

	viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	viper.BindPFlag("schema", serveCmd.Flags().Lookup("schema"))
}

func serve(_ *cobra.Command) {
	ctx := context.Background()

	logr, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logr.Fatal("getting a config", zap.Error(err))
	}

	logr.Info("starting the kaamkhoj server", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logr.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logr.Fatal("connecting to redis", zap.String("addr", config.Redis.Addr), zap.Error(err))
	}

	sessions := session.NewRedisStore(redisClient, time.Duration(config.Session.TTLMinutes)*time.Minute)
	profiles := profile.NewStore(redisClient, logr)

	eng, generator := buildEngine(config, sessions, logr)
	eng.Start(ctx)

	conversations := conversation.NewService(generator, logr)

	handler := server.NewHandler(eng, profiles, conversations, logr)
	srv := server.New(config.Listen, handler, logr)

	logr.Info("listening", zap.String("addr", config.Listen))

	srv.Spin()
}

// buildEngine assembles the extraction engine and returns the generator as
// well, since the conversation mode shares it. With AI disabled or
// misconfigured the engine runs rules-only.
func buildEngine(config *Config, sessions session.Store, logr *zap.Logger) (*engine.Engine, ai.Generator) {
	schema := extract.NewSchema(extract.SchemaVersion(config.Schema))
	logr.Info("using intake schema", zap.String("version", string(schema.Version)))

	cfg := engine.Config{
		Schema:          schema,
		Sessions:        sessions,
		Logger:          logr,
		ReprobeInterval: time.Duration(config.AI.ReprobeSeconds) * time.Second,
	}
	if config.AI.ReprobeSeconds == 0 {
		cfg.ReprobeInterval = engine.DefaultReprobeInterval
	}

	if !config.AI.Enabled {
		logr.Info("model extraction disabled, running rules-only")
		return engine.New(cfg), nil
	}

	generator, prober, err := newGenerator(config.AI, logr)
	if err != nil {
		logr.Warn("model extraction unavailable, running rules-only", zap.Error(err))
		return engine.New(cfg), nil
	}

	extractorLogger := logger.WithCommonFields(logr, config.AI.Provider, generator.Model())

	cfg.Model = ai.NewExtractor(generator, extractorLogger, config.AI.MaxLogLength)
	cfg.Prober = prober

	return engine.New(cfg), generator
}

func newGenerator(cfg *AIConfig, logr *zap.Logger) (ai.Generator, ai.Prober, error) {
	switch strings.TrimSpace(strings.ToLower(cfg.Provider)) {
	case "", "ollama":
		opts := []ollama.Option{
			ollama.WithBaseURL(cfg.Ollama.BaseURL),
			ollama.WithModel(cfg.Ollama.Model),
			ollama.WithTimeout(time.Duration(cfg.Ollama.TimeoutSeconds) * time.Second),
		}
		if cfg.Ollama.Temperature > 0 {
			opts = append(opts, ollama.WithTemperature(cfg.Ollama.Temperature))
		}

		client := ollama.New(logr, opts...)
		return client, client, nil
	case "gemini":
		if cfg.Gemini == nil {
			return nil, nil, fmt.Errorf("gemini configuration is required when provider is gemini")
		}

		apiKey, err := secrets.Load(secrets.Source{
			Name: "gemini api key",
			File: cfg.Gemini.APIKeyFile,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
		}

		generator, err := gemini.NewGenerator(context.Background(), apiKey, cfg.Gemini.Model)
		if err != nil {
			return nil, nil, err
		}
		return generator, generator, nil
	default:
		return nil, nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}
}
