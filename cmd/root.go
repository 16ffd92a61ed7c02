package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "klimapro",
	Short: "KlimaPro PH site server and lead management",
	Long: `KlimaPro serves the KlimaPro PH marketing site: the service catalog,
contact form lead capture, and the AI assistant. Leads are stored in a
local SQLite database and can be exported for follow-up.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "klimapro.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
