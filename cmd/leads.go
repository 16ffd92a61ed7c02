package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Whilreal0/Klima-Pro/internal/config"
	"github.com/Whilreal0/Klima-Pro/internal/contact"
	"github.com/Whilreal0/Klima-Pro/internal/db"
	"github.com/Whilreal0/Klima-Pro/internal/progress"
)

var leadsOutput string

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Manage captured contact-form leads",
}

var leadsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all leads to CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "leads.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := contact.NewStore(database)
		leads, err := store.List(context.Background())
		if err != nil {
			return fmt.Errorf("listing leads: %w", err)
		}

		out, err := os.Create(leadsOutput)
		if err != nil {
			return fmt.Errorf("creating %s: %w", leadsOutput, err)
		}
		defer out.Close()

		w := csv.NewWriter(out)
		if err := w.Write([]string{"id", "created_at", "name", "phone", "email", "message", "source_page", "status"}); err != nil {
			return err
		}

		reporter := progress.NewReporter("Exporting leads")
		reporter.Start(len(leads))
		for i, lead := range leads {
			record := []string{
				lead.ID,
				lead.CreatedAt.Format(time.RFC3339),
				lead.Name,
				lead.Phone,
				lead.Email,
				lead.Message,
				lead.SourcePage,
				lead.Status,
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("writing lead %s: %w", lead.ID, err)
			}
			reporter.Update(i+1, "")
		}
		reporter.Finish()

		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}

		fmt.Printf("Exported %d leads to %s\n", len(leads), leadsOutput)
		return nil
	},
}

var leadsCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of captured leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "leads.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		n, err := contact.NewStore(database).Count(context.Background())
		if err != nil {
			return fmt.Errorf("counting leads: %w", err)
		}
		fmt.Println(n)
		return nil
	},
}

func init() {
	leadsExportCmd.Flags().StringVarP(&leadsOutput, "output", "o", "leads.csv", "output CSV file")
	leadsCmd.AddCommand(leadsExportCmd)
	leadsCmd.AddCommand(leadsCountCmd)
	rootCmd.AddCommand(leadsCmd)
}
