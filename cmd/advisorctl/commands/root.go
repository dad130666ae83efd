package commands

import (
	"fmt"
	"os"

	"material-advisor/internal/config"
	"material-advisor/internal/logger"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "advisorctl",
	Short: "Developer tools for the material advisor knowledge engine",
	Long: `advisorctl builds the knowledge index from the curated corpus and the live
catalog, runs retrieval for a single question, seeds the product catalog and
maintains the embedding cache.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			os.Setenv("LOG_LEVEL", "debug")
		}
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		if verbose {
			logger.InitLogger(cfg)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable structured debug logs")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
