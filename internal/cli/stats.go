package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/rubiks_cube/internal/analysis"
	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

var (
	statsLast   bool
	statsAll    bool
	statsFormat string
	statsMinN   int
	statsMaxN   int
	statsTopK   int
	statsPause  int64
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-id]",
	Short: "Analyse recorded sessions",
	Long: `Summarise a session: step counts per family and operation, undo steps,
cancellations, stack depth, pauses, wasted steps and repeated operation
sequences.

With --all, repeated sequences are mined across every stored session.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsLast, "last", false, "Analyse the most recent session")
	statsCmd.Flags().BoolVar(&statsAll, "all", false, "Mine repeated sequences across all sessions")
	statsCmd.Flags().StringVar(&statsFormat, "format", "text", "Output format (text, json, yaml)")
	statsCmd.Flags().IntVar(&statsMinN, "min-n", 2, "Shortest sequence length to mine")
	statsCmd.Flags().IntVar(&statsMaxN, "max-n", 6, "Longest sequence length to mine")
	statsCmd.Flags().IntVar(&statsTopK, "top", 5, "Sequences to report per length")
	statsCmd.Flags().Int64Var(&statsPause, "pause-ms", 2000, "Gap that counts as a pause")
}

// sessionReport is everything stats prints for one session.
type sessionReport struct {
	Summary     *analysis.SessionSummary   `json:"summary" yaml:"summary"`
	Pauses      []analysis.PauseInfo       `json:"pauses" yaml:"pauses"`
	Repetitions *analysis.RepetitionReport `json:"repetitions" yaml:"repetitions"`
	NGrams      *analysis.NGramReport      `json:"ngrams" yaml:"ngrams"`
}

func buildReport(db *storage.DB, sessionID string) (*sessionReport, error) {
	sess, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}

	records, err := storage.NewStepRepository(db).GetBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	orientations, err := storage.NewOrientationRepository(db).Count(sessionID)
	if err != nil {
		return nil, err
	}

	return &sessionReport{
		Summary:     analysis.Summarize(sess, records, orientations),
		Pauses:      analysis.AnalyzePauses(records, statsPause),
		Repetitions: analysis.AnalyzeRepetitions(records),
		NGrams:      analysis.MineNGrams(records, statsMinN, statsMaxN, statsTopK),
	}, nil
}

func encodeReport(v any, format string) (string, bool, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		return string(data), true, err
	case "yaml":
		data, err := yaml.Marshal(v)
		return strings.TrimRight(string(data), "\n"), true, err
	case "text":
		return "", false, nil
	default:
		return "", false, fmt.Errorf("unknown format: %s (use text, json or yaml)", format)
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if statsAll {
		return runStatsAll(db)
	}

	sessionID, err := resolveSessionID(db, args, statsLast)
	if err != nil {
		return err
	}

	report, err := buildReport(db, sessionID)
	if err != nil {
		return err
	}

	out, encoded, err := encodeReport(report, statsFormat)
	if err != nil {
		return err
	}
	if encoded {
		fmt.Println(out)
		return nil
	}

	printReport(report)
	return nil
}

func runStatsAll(db *storage.DB) error {
	sessions, err := storage.NewSessionRepository(db).List(-1)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	stepRepo := storage.NewStepRepository(db)
	reports := make([]*analysis.NGramReport, 0, len(sessions))
	for _, s := range sessions {
		records, err := stepRepo.GetBySession(s.SessionID)
		if err != nil {
			return fmt.Errorf("failed to get steps: %w", err)
		}
		reports = append(reports, analysis.MineNGrams(records, statsMinN, statsMaxN, 0))
	}
	merged := analysis.MergeReports(reports, statsTopK)

	out, encoded, err := encodeReport(merged, statsFormat)
	if err != nil {
		return err
	}
	if encoded {
		fmt.Println(out)
		return nil
	}

	fmt.Printf("Repeated sequences across %d session(s)\n", len(sessions))
	fmt.Println()
	printNGrams(merged)
	return nil
}

func printReport(r *sessionReport) {
	s := r.Summary

	fmt.Println("Session Statistics")
	fmt.Println("==================")
	fmt.Println()
	fmt.Printf("ID:            %s\n", s.SessionID)
	fmt.Printf("Duration:      %s\n", formatDuration(time.Duration(s.DurationMs)*time.Millisecond))
	fmt.Printf("Steps:         %d (%d undo)\n", s.TotalSteps, s.UndoSteps)
	fmt.Printf("Steps/sec:     %.2f\n", s.StepsPerSecond)
	fmt.Printf("Cancellations: %d\n", s.Cancellations)
	fmt.Printf("Stack depth:   max %d, final %d\n", s.MaxStackDepth, s.FinalStackDepth)
	fmt.Printf("Longest pause: %s\n", formatDuration(time.Duration(s.LongestPauseMs)*time.Millisecond))
	fmt.Printf("Orientations:  %d\n", s.OrientationChanges)
	fmt.Println()

	fmt.Println("By family")
	fmt.Println("---------")
	printCounts(s.FamilyCounts)
	fmt.Println()

	fmt.Println("By operation")
	fmt.Println("------------")
	printCounts(s.OperationCounts)
	fmt.Println()

	rep := r.Repetitions
	fmt.Println("Wasted motion")
	fmt.Println("-------------")
	fmt.Printf("Immediate cancellations: %d\n", len(rep.ImmediateCancellations))
	fmt.Printf("Merge opportunities:     %d\n", len(rep.MergeOpportunities))
	fmt.Printf("Back-and-forth runs:     %d\n", len(rep.BackAndForthPatterns))
	fmt.Printf("Wasted steps:            %d (efficiency %.0f%%)\n", rep.TotalWastedSteps, rep.Efficiency*100)
	fmt.Printf("Pauses over %s:  %d\n", formatDuration(time.Duration(statsPause)*time.Millisecond), len(r.Pauses))
	fmt.Println()

	fmt.Println("Repeated sequences")
	fmt.Println("------------------")
	printNGrams(r.NGrams)
}

func printCounts(counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	for _, k := range keys {
		fmt.Printf("  %-26s %d\n", k, counts[k])
	}
}

func printNGrams(report *analysis.NGramReport) {
	if len(report.TopNGrams) == 0 {
		fmt.Println("  (none)")
		return
	}

	lengths := make([]int, 0, len(report.TopNGrams))
	for n := range report.TopNGrams {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	for _, n := range lengths {
		for _, ng := range report.TopNGrams[n] {
			fmt.Printf("  %dx  %s\n", ng.Count, strings.Join(ng.Sequence, " "))
		}
	}
}
