package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kaamkhoj/kaamkhoj/internal/engine"
	"github.com/kaamkhoj/kaamkhoj/internal/extract"
	"github.com/kaamkhoj/kaamkhoj/internal/logger"
	"github.com/kaamkhoj/kaamkhoj/internal/session"
)

const (
	PromptEnglish = "English"
	PromptHindi   = "हिंदी (Hindi)"

	chatSessionID = "chat"
	// chatMaxRetries bounds how often one field is re-asked before moving on.
	chatMaxRetries = 3
)

var languagePrompt = promptui.Select{
	Label: "Choose language / भाषा चुनें",
	Items: []string{PromptEnglish, PromptHindi},
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run the intake flow interactively in the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		chat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("schema", "", "intake profile schema version (v1 or v2)")

	viper.BindPFlag("schema", chatCmd.Flags().Lookup("schema"))
}

// chat walks every schema field in the terminal using the same engine the
// server runs, with an in-memory accumulator instead of redis.
func chat(_ *cobra.Command) {
	ctx := context.Background()

	logr, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logr.Fatal("getting a config", zap.Error(err))
	}

	_, selected, err := languagePrompt.Run()
	if err != nil {
		logr.Fatal("exiting", zap.Error(err))
	}

	language := "en-IN"
	if selected == PromptHindi {
		language = "hi-IN"
	}

	sessions := session.NewMemoryStore(session.DefaultTTL)
	eng, _ := buildEngine(config, sessions, logr)
	eng.Start(ctx)

	// The availability probe runs in the background; give it a beat before
	// the first question so the model path is not skipped spuriously.
	time.Sleep(200 * time.Millisecond)

	schema := extract.NewSchema(extract.SchemaVersion(config.Schema))
	collected := make(map[string]any, len(schema.Fields))

	for _, field := range schema.Fields {
		value, ok := askField(ctx, eng, field, language)
		if !ok {
			continue
		}
		collected[string(field)] = value
	}

	pretty, _ := json.MarshalIndent(collected, "", "  ")
	fmt.Printf("\nCollected profile:\n%s\n", pretty)
}

func askField(ctx context.Context, eng *engine.Engine, field extract.Field, language string) (any, bool) {
	retry := 0
	reply := ""

	for retry <= chatMaxRetries {
		if reply == "" {
			// First ask uses the engine's own clarification wording by
			// requesting a reply for an empty miss.
			result, err := eng.ProcessField(ctx, engine.Request{
				SessionID: chatSessionID,
				Field:     field,
				Language:  language,
			})
			if err == nil && !result.Success {
				reply = result.Reply
			}
		}

		input := promptui.Prompt{Label: reply}
		text, err := input.Run()
		if err != nil {
			return nil, false
		}

		result, err := eng.ProcessField(ctx, engine.Request{
			SessionID:  chatSessionID,
			Text:       text,
			Field:      field,
			Language:   language,
			RetryCount: retry,
		})
		if err != nil {
			fmt.Println("something went wrong, skipping this question")
			return nil, false
		}

		if result.Success {
			fmt.Println(result.Reply)
			return result.ExtractedValue, true
		}

		reply = result.Reply
		retry++
	}

	return nil, false
}
