package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

var (
	exportFormat string
	exportOutput string
	exportLast   bool
)

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a session's steps",
	Long: `Export the step sequence of a session in text, JSON or YAML format.

The text format is one line of operation keys, with undo steps omitted, that
'rubiks apply' accepts as input.

Examples:
  rubiks export --last
  rubiks export <session_id> --format json
  rubiks export <session_id> --format yaml -o steps.yaml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last session")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// exportedStep is the JSON and YAML shape of a step.
type exportedStep struct {
	StepIndex  int    `json:"step_index" yaml:"step_index"`
	TsMs       int64  `json:"ts_ms" yaml:"ts_ms"`
	Operation  string `json:"operation" yaml:"operation"`
	Family     string `json:"family" yaml:"family"`
	Undo       bool   `json:"undo" yaml:"undo"`
	StackDepth int    `json:"stack_depth" yaml:"stack_depth"`
}

type exportedSession struct {
	SessionID string         `json:"session_id" yaml:"session_id"`
	Seed      *uint64        `json:"seed,omitempty" yaml:"seed,omitempty"`
	Steps     []exportedStep `json:"steps" yaml:"steps"`
}

func formatExport(sessionID string, seed *uint64, records []storage.StepRecord, format string) (string, error) {
	switch strings.ToLower(format) {
	case "txt":
		var keys []string
		for _, r := range records {
			if !r.Undo {
				keys = append(keys, r.Operation)
			}
		}
		return strings.Join(keys, " "), nil

	case "json", "yaml":
		out := exportedSession{SessionID: sessionID, Seed: seed, Steps: make([]exportedStep, len(records))}
		for i, r := range records {
			out.Steps[i] = exportedStep{
				StepIndex:  r.StepIndex,
				TsMs:       r.TsMs,
				Operation:  r.Operation,
				Family:     r.Family,
				Undo:       r.Undo,
				StackDepth: r.StackDepth,
			}
		}

		if strings.ToLower(format) == "yaml" {
			data, err := yaml.Marshal(out)
			if err != nil {
				return "", fmt.Errorf("failed to marshal YAML: %w", err)
			}
			return strings.TrimRight(string(data), "\n"), nil
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format: %s (use txt, json or yaml)", format)
	}
}

// writeOutput prints to stdout, or to path when set.
func writeOutput(path, output string) error {
	if path == "" {
		fmt.Println(output)
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessionID, err := resolveSessionID(db, args, exportLast)
	if err != nil {
		return err
	}

	sess, err := storage.NewSessionRepository(db).Get(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if sess == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	records, err := storage.NewStepRepository(db).GetBySession(sessionID)
	if err != nil {
		return fmt.Errorf("failed to get steps: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no steps found for session %s", sessionID)
	}

	output, err := formatExport(sessionID, sess.Seed, records, exportFormat)
	if err != nil {
		return err
	}

	if err := writeOutput(exportOutput, output); err != nil {
		return err
	}
	if exportOutput != "" {
		fmt.Printf("Exported %d steps to %s\n", len(records), exportOutput)
	}

	return nil
}
