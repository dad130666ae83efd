package commands

import (
	"context"
	"fmt"
	"os"

	"material-advisor/internal/catalog"
	"material-advisor/internal/config"
	"material-advisor/models"

	"github.com/spf13/cobra"
)

var (
	seedFile   string
	seedDryRun bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert products into the catalog collection",
	Long: `Upserts products by SKU into the catalog collection. Products come from an
.xlsx price list when --file is given, otherwise from the built-in sample set.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "path to an .xlsx price list")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "parse and print products without writing")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	products := catalog.SampleProducts()
	if seedFile != "" {
		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()

		products, err = catalog.ReadSpreadsheet(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", seedFile, err)
		}
	}

	if seedDryRun {
		printProducts(products)
		return nil
	}

	client, err := config.ConnectMongoDB(cfg)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	mc := catalog.NewMongoCatalog(client.Database(cfg.DBName), cfg.CatalogCollection, nil)
	res, err := mc.Upsert(cmd.Context(), products)
	if err != nil {
		return err
	}
	fmt.Printf("Catalog %s.%s: %d inserted, %d updated, %d skipped without SKU\n",
		cfg.DBName, cfg.CatalogCollection, res.Inserted, res.Updated, res.Skipped)
	return nil
}

func printProducts(products []models.CatalogProduct) {
	for _, p := range products {
		state := "active"
		if !p.IsActive {
			state = "inactive"
		}
		fmt.Printf("%-18s %-40s %-16s %12.0f/%s (%s)\n", p.SKU, p.Name, p.CategoryName, p.Price, p.Unit, state)
	}
	fmt.Printf("%d products\n", len(products))
}
