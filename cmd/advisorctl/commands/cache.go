package commands

import (
	"errors"
	"fmt"

	"material-advisor/internal/app"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Maintain the Redis embedding cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every cached vector for the configured embedding model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Cache == nil {
			return errors.New("embedding cache is disabled or Redis is unreachable")
		}
		n, err := a.Cache.Purge(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d cached embeddings for %s\n", n, cfg.GoogleEmbeddingsModel)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
