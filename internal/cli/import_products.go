// internal/cli/import_products.go
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/natura-backend/internal/database"
	"github.com/javajoker/natura-backend/internal/services"
)

var importProductsCmd = &cobra.Command{
	Use:   "import-products <file.json>",
	Short: "Load reference products from a JSON file",
	Long: `Reads a JSON array of {"codigo", "nombre", "precio"} objects and
inserts or updates each product by codigo in a single transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImportProducts(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(importProductsCmd)
}

func runImportProducts(ctx context.Context, path string) error {
	req, err := readProductFile(path)
	if err != nil {
		return err
	}

	db, err := database.Bootstrap(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(db)

	productService := services.NewProductService(database.NewStore(db))
	n, err := productService.ImportProducts(ctx, req)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"file":     path,
		"products": n,
	}).Info("Products imported")
	return nil
}

func readProductFile(path string) (*services.ImportProductsRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var products []services.ProductImport
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &services.ImportProductsRequest{Products: products}, nil
}
