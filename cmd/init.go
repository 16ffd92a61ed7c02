package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Whilreal0/Klima-Pro/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Run the interactive configuration wizard",
	Long:  `Walks through the site settings (port, data directory, AI assistant, reCAPTCHA) and writes klimapro.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
