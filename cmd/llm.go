package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/abhisek/quizblocks/internal/app"
	"github.com/abhisek/quizblocks/internal/llm"
	"github.com/abhisek/quizblocks/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-8s  %-19s  %-14s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 103))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Fprintf(out, "%-8s  %-19s  %-14s  %-28s  %-6d  %-6d  %-7d  %s\n",
				truncate(e.ID, 8),
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				truncate(e.Model, 28),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Long:  "View one LLM event. The id may be shortened to any unique prefix, as shown by llm list.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := findLLMEvent(context.Background(), s.EventRepo(), args[0])
		if err != nil {
			return err
		}
		printLLMEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse recent LLM events in the terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return app.RunLog(s.EventRepo())
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}
		printUsage(out, events)
		return nil
	},
}

// findLLMEvent resolves an exact event id, then a unique id prefix.
func findLLMEvent(ctx context.Context, repo store.EventRepo, id string) (*store.LLMRequestEventRecord, error) {
	e, err := repo.GetLLMEvent(ctx, id)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("get event: %w", err)
	}

	events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	var match *store.LLMRequestEventRecord
	for i := range events {
		if !strings.HasPrefix(events[i].ID, id) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("event id %q is ambiguous", id)
		}
		match = &events[i]
	}
	if match == nil {
		return nil, fmt.Errorf("event %s not found", id)
	}
	return match, nil
}

func printLLMEvent(out io.Writer, e *store.LLMRequestEventRecord) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(out, "ID:        %s\n", e.ID)
	fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Provider:  %s\n", e.Provider)
	fmt.Fprintf(out, "Model:     %s\n", e.Model)
	fmt.Fprintf(out, "Purpose:   %s\n", e.Purpose)
	fmt.Fprintf(out, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
	fmt.Fprintf(out, "Latency:   %dms\n", e.LatencyMs)
	fmt.Fprintf(out, "Success:   %v\n", e.Success)
	if e.ErrorMessage != "" {
		fmt.Fprintf(out, "Error:     %s\n", e.ErrorMessage)
	}

	for _, part := range []struct{ title, body string }{
		{"REQUEST", e.RequestBody},
		{"RESPONSE", e.ResponseBody},
	} {
		fmt.Fprintln(out)
		fmt.Fprintln(out, sep)
		fmt.Fprintln(out, part.title)
		fmt.Fprintln(out, sep)
		if part.body != "" {
			fmt.Fprintln(out, part.body)
		} else {
			fmt.Fprintln(out, "(not captured)")
		}
	}
}

// usageRow aggregates the events sharing a purpose or a model.
type usageRow struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
}

func aggregate(events []store.LLMRequestEventRecord, key func(store.LLMRequestEventRecord) string) []usageRow {
	byKey := map[string]*usageRow{}
	for _, e := range events {
		k := key(e)
		row, ok := byKey[k]
		if !ok {
			row = &usageRow{Key: k}
			byKey[k] = row
		}
		row.Calls++
		row.InputTokens += e.InputTokens
		row.OutputTokens += e.OutputTokens
		row.LatencyMs += e.LatencyMs
	}

	rows := make([]usageRow, 0, len(byKey))
	for _, r := range byKey {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Calls != rows[j].Calls {
			return rows[i].Calls > rows[j].Calls
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

func printUsage(out io.Writer, events []store.LLMRequestEventRecord) {
	line := strings.Repeat("─", 72)

	// Usage by purpose.
	fmt.Fprintln(out, "Usage by Purpose")
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "%-16s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(out, line)

	var totalCalls, totalIn, totalOut int
	for _, st := range aggregate(events, func(e store.LLMRequestEventRecord) string { return e.Purpose }) {
		total := st.InputTokens + st.OutputTokens
		fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
			st.Key, st.Calls, st.InputTokens, st.OutputTokens, total, st.LatencyMs/int64(st.Calls))
		totalCalls += st.Calls
		totalIn += st.InputTokens
		totalOut += st.OutputTokens
	}

	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d\n",
		"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)

	// Cost by model.
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Estimated Cost (USD)")
	fmt.Fprintln(out, line)
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n",
		"Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(out, line)

	var totalCost float64
	var unknownModels []string
	for _, mu := range aggregate(events, func(e store.LLMRequestEventRecord) string { return e.Model }) {
		cost := llm.LookupCost(mu.Key)
		if cost == nil {
			unknownModels = append(unknownModels, mu.Key)
			fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
				truncate(mu.Key, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
			continue
		}
		c := cost.Cost(mu.InputTokens, mu.OutputTokens)
		totalCost += c
		fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
			truncate(mu.Key, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
	}

	fmt.Fprintln(out, line)
	label := "TOTAL"
	if len(unknownModels) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n",
		label, "", "", "", formatCost(totalCost))

	if len(unknownModels) > 0 {
		fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (quiz-authoring or quiz-repair)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmBrowseCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
