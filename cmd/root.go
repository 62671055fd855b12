package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizblocks/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizblocks",
	Short: "Interactive quizzes embedded in Markdown notes",
	Long: "quizblocks finds fenced quiz blocks in Markdown documents, validates them, " +
		"and lets you answer them in the terminal.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZBLOCKS_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(snippetCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZBLOCKS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store for commands that require it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// openOptionalStore opens the event store for commands that work without
// it. Failures are reported on stderr and yield a nil store.
func openOptionalStore(cmd *cobra.Command) *store.Store {
	s, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Event log unavailable:", err)
		fmt.Fprintln(os.Stderr, "LLM requests will not be recorded.")
		return nil
	}
	return s
}

// eventRepo returns the repo of s, or nil when s is nil.
func eventRepo(s *store.Store) store.EventRepo {
	if s == nil {
		return nil
	}
	return s.EventRepo()
}
