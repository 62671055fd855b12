package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizblocks/internal/block"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.md>...",
	Short: "Validate the quiz blocks of Markdown documents",
	Long: `Load every quiz block and print one line per block: "ok" with its stable id
and radio group name, or the diagnostic that would replace the widget.
Exits non-zero when any block fails to load.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		var reports []blockReport
		for _, path := range args {
			results, err := loadDocument(path)
			if err != nil {
				return err
			}
			for _, r := range results {
				reports = append(reports, newBlockReport(path, r))
			}
		}

		out := cmd.OutOrStdout()
		if asJSON {
			if err := writeReportsJSON(out, reports); err != nil {
				return err
			}
		} else {
			writeReports(out, reports)
		}

		failed := 0
		for _, r := range reports {
			if !r.OK {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d quiz blocks failed to load", failed, len(reports))
		}
		return nil
	},
}

// blockReport is the check outcome of one block.
type blockReport struct {
	Path      string `json:"path"`
	LineStart int    `json:"line_start"`
	LineEnd   int    `json:"line_end"`
	OK        bool   `json:"ok"`
	Kind      string `json:"type,omitempty"`
	StableID  string `json:"stable_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
	Error     string `json:"error,omitempty"`
}

func newBlockReport(path string, r block.Result) blockReport {
	rep := blockReport{
		Path:      path,
		LineStart: r.Block.LineStart,
		LineEnd:   r.Block.LineEnd,
		OK:        r.OK(),
	}
	if r.OK() {
		rep.Kind = string(r.Request.Quiz.Kind)
		rep.StableID = r.Request.StableID
		rep.GroupName = r.Request.GroupName
	} else {
		rep.Error = r.Diagnostic.Message
	}
	return rep
}

func writeReports(w io.Writer, reports []blockReport) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "No quiz blocks found.")
		return
	}
	for _, r := range reports {
		loc := fmt.Sprintf("%s:%d-%d", r.Path, r.LineStart+1, r.LineEnd+1)
		if r.OK {
			fmt.Fprintf(w, "%s  ok  %-8s  %s  %s\n", loc, r.Kind, r.GroupName, r.StableID)
			continue
		}
		lines := strings.Split(r.Error, "\n")
		fmt.Fprintf(w, "%s  %s\n", loc, lines[0])
		for _, l := range lines[1:] {
			fmt.Fprintf(w, "    %s\n", l)
		}
	}
}

func writeReportsJSON(w io.Writer, reports []blockReport) error {
	if reports == nil {
		reports = []blockReport{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print results as JSON")
}
