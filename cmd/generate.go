package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/abhisek/quizblocks/internal/author"
	"github.com/abhisek/quizblocks/internal/block"
	"github.com/abhisek/quizblocks/internal/llm"
	"github.com/abhisek/quizblocks/internal/quiz"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Draft quiz blocks with an LLM",
	Long: `Ask the configured LLM provider for quiz blocks on a topic. Every block is
loaded and validated before it is printed. With --out the blocks are appended
to a Markdown file, and the quizzes already in that file are passed to the model
so it does not repeat them.

The provider is selected with QUIZBLOCKS_LLM_PROVIDER and the matching
QUIZBLOCKS_<PROVIDER>_API_KEY. When neither is set, the first of
ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY and OPENROUTER_API_KEY is used.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("type", "", "Quiz type: radio, checkbox or choice (required)")
	generateCmd.Flags().String("topic", "", "What the quiz is about (required)")
	generateCmd.Flags().Int("options", 0, "Number of options (default from config)")
	generateCmd.Flags().Int("questions", 0, "Number of questions of a choice quiz (default from config)")
	generateCmd.Flags().Int("count", 1, "Number of quizzes to generate")
	generateCmd.Flags().String("out", "", "Append the blocks to this Markdown file instead of printing them")
	_ = generateCmd.MarkFlagRequired("type")
	_ = generateCmd.MarkFlagRequired("topic")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	typeVal, _ := cmd.Flags().GetString("type")
	topic, _ := cmd.Flags().GetString("topic")
	options, _ := cmd.Flags().GetInt("options")
	questions, _ := cmd.Flags().GetInt("questions")
	count, _ := cmd.Flags().GetInt("count")
	outPath, _ := cmd.Flags().GetString("out")

	kind := quiz.Kind(strings.ToLower(typeVal))
	if !kind.Valid() {
		return fmt.Errorf("invalid type %q: must be radio, checkbox or choice", typeVal)
	}
	if strings.TrimSpace(topic) == "" {
		return errors.New("--topic must not be blank")
	}
	if count < 1 {
		return fmt.Errorf("--count must be at least 1, got %d", count)
	}

	cfg, err := providerConfig()
	if err != nil {
		return err
	}

	st := openOptionalStore(cmd)
	if st != nil {
		defer st.Close()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	provider, err := llm.NewProvider(ctx, cfg, eventRepo(st))
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	avoid, err := existingPrompts(outPath)
	if err != nil {
		return err
	}

	gen := author.New(provider, author.DefaultConfig())
	var blocks []string
	for i := 1; i <= count; i++ {
		callCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		res, err := gen.Generate(callCtx, author.Input{
			Kind:      kind,
			Topic:     topic,
			Options:   options,
			Questions: questions,
			Avoid:     avoid,
		})
		cancel()
		if err != nil {
			if len(blocks) == 0 {
				return fmt.Errorf("generate quiz: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Quiz %d/%d: generation failed: %v\n", i, count, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "Quiz %d/%d: %d attempt(s), %d tokens\n",
			i, count, res.Attempts, res.Usage.InputTokens+res.Usage.OutputTokens)
		avoid = append(avoid, res.Quiz.Content)
		blocks = append(blocks, res.Block)
	}

	if outPath == "" {
		fmt.Fprint(cmd.OutOrStdout(), strings.Join(blocks, "\n"))
		return nil
	}
	return appendBlocks(outPath, blocks)
}

// providerConfig reads QUIZBLOCKS_* settings, falling back to the
// conventional API key variables when the selected provider has no key.
func providerConfig() (llm.Config, error) {
	cfg, err := llm.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}
	if cfg.HasKey() || os.Getenv("QUIZBLOCKS_LLM_PROVIDER") != "" {
		return cfg, nil
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		discovered.Timeout = cfg.Timeout
		discovered.Retry = cfg.Retry
		return discovered, nil
	}
	return cfg, nil
}

// existingPrompts returns the prompts of the valid quizzes in path. A
// missing file has none.
func existingPrompts(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	results, err := loadDocument(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var prompts []string
	for _, r := range results {
		if r.OK() && strings.TrimSpace(r.Request.Quiz.Content) != "" {
			prompts = append(prompts, r.Request.Quiz.Content)
		}
	}
	return prompts, nil
}

// appendBlocks adds blocks to the end of path, separated from existing
// text by a blank line.
func appendBlocks(path string, blocks []string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var sb strings.Builder
	sb.Write(existing)
	for _, b := range blocks {
		if sb.Len() > 0 {
			if !strings.HasSuffix(sb.String(), "\n") {
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(b)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if added := block.Process(block.Document{Path: path, Source: []byte(sb.String())}); len(added) > 0 {
		fmt.Fprintf(os.Stderr, "Wrote %d quiz block(s) to %s (%d total)\n", len(blocks), path, len(added))
	}
	return nil
}
