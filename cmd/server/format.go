// cmd/server/format.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

func printProducts(cmd *cobra.Command, products []models.Product) error {
	if format, _ := cmd.Flags().GetString("format"); format == "json" {
		return printJSON(cmd, products)
	}

	out := cmd.OutOrStdout()
	if len(products) == 0 {
		fmt.Fprintln(out, "No products found")
		return nil
	}
	for _, p := range products {
		fmt.Fprintf(out, "%3d  %-28s %-12s %s\n", p.ID, p.Slug, p.Category, priceLine(p))
	}
	fmt.Fprintf(out, "\n%d products\n", len(products))
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printProductDetail(out io.Writer, p models.Product) {
	fmt.Fprintf(out, "%s (%s)\n", p.Name, p.Slug)
	fmt.Fprintf(out, "  Price:    %s\n", priceLine(p))
	fmt.Fprintf(out, "  Category: %s\n", p.Category)
	fmt.Fprintf(out, "  Rating:   %s (%s reviews)\n", strings.Repeat("*", p.Rating), p.Reviews)
	if p.IsPopular {
		fmt.Fprintln(out, "  Popular")
	}
	fmt.Fprintf(out, "\n  %s\n", p.Description)
	if len(p.KeyIngredients) > 0 {
		fmt.Fprintf(out, "\n  Key ingredients: %s\n", strings.Join(p.KeyIngredients, ", "))
	}
	if len(p.FreeFrom) > 0 {
		fmt.Fprintf(out, "  Free from:       %s\n", strings.Join(p.FreeFrom, ", "))
	}
}

func priceLine(p models.Product) string {
	line := "$" + p.Price.StringFixed(2)
	if p.OriginalPrice != nil {
		line += fmt.Sprintf(" (was $%s)", p.OriginalPrice.StringFixed(2))
	}
	if p.Discount != "" {
		line += " " + p.Discount
	}
	return line
}
