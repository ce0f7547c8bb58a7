package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks_cube/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and session status",
	Long:  `Display the database in use, the schema version, session totals and any active session.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	stateFile, err := openStateFile()
	if err != nil {
		return err
	}

	fmt.Println("Rubik's Cube Status")
	fmt.Println("===================")
	fmt.Println()

	fmt.Printf("Database:   %s\n", cfg.DBPath)
	if last := stateFile.DBPath(); last != "" && last != cfg.DBPath {
		fmt.Printf("            (last session used %s)\n", last)
	}
	fmt.Printf("State file: %s\n", stateFile.Path())

	db, err := storage.Open(cfg.DBPath)
	if err == nil {
		defer db.Close()
		if err := db.MigrateUp(); err == nil {
			if v, err := db.CurrentVersion(); err == nil {
				fmt.Printf("Schema:     v%d\n", v)
			}

			sessionRepo := storage.NewSessionRepository(db)
			if last, _ := sessionRepo.GetLast(); last != nil {
				fmt.Printf("Last session: %s\n", last.StartedAt.Format(time.RFC3339))
			}

			all, _ := sessionRepo.List(-1)
			fmt.Printf("Total sessions: %d\n", len(all))
		}
	} else {
		loggerFor(cmd).Warn("failed to open database", "err", err)
	}

	fmt.Println()

	if stateFile.HasActiveSession() {
		fmt.Printf("Active session: %s\n", stateFile.ActiveSessionID())
		fmt.Println("  (Use 'rubiks session end' to finish it)")
	} else {
		fmt.Println("No active session")
	}

	return nil
}
