package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tommy251/Atlas2.0/app/repositories"
	"github.com/tommy251/Atlas2.0/app/services"
	"github.com/tommy251/Atlas2.0/config"
	"github.com/tommy251/Atlas2.0/pkg/storage"
)

var importFeed string

// atlas import — load the product feed into the configured store.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the product feed CSV into the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		storage.Connect()

		feed := importFeed
		if feed == "" {
			feed = config.ProductsFeed()
		}

		f, err := os.Open(feed)
		if err != nil {
			return fmt.Errorf("open feed: %w", err)
		}
		defer f.Close()

		products, warnings := services.ParseFeed(f)

		ctx := context.Background()
		stores, err := repositories.New(ctx)
		if err != nil {
			return err
		}
		if err := stores.Products.ReplaceAll(ctx, products); err != nil {
			return fmt.Errorf("store products: %w", err)
		}

		for _, warning := range warnings {
			fmt.Fprintf(os.Stderr, "line %d: %s\n", warning.Line, warning.Message)
		}
		fmt.Printf("Imported %d products (%d rows skipped or patched).\n", len(products), len(warnings))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFeed, "feed", "", "feed file path (default: PRODUCTS_FEED)")
}
