// cmd/server/catalog.go
package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/javajoker/cleantheory-backend/internal/models"
	"github.com/javajoker/cleantheory-backend/internal/search"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the product catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products in catalog order",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Filter products the way the storefront search does",
	Args:  cobra.NoArgs,
	RunE:  runCatalogSearch,
}

func init() {
	catalogCmd.PersistentFlags().String("format", "table", "Output format: json, table")

	catalogListCmd.Flags().String("category", "", "Only list this category")

	catalogSearchCmd.Flags().String("query", "", "Match name, description or key ingredients")
	catalogSearchCmd.Flags().StringSlice("category", nil, "Categories to include")
	catalogSearchCmd.Flags().StringSlice("skin-type", nil, "Skin types, any of")
	catalogSearchCmd.Flags().StringSlice("ingredient", nil, "Key ingredients, any of")
	catalogSearchCmd.Flags().String("price-min", search.DefaultPriceMin.String(), "Minimum price")
	catalogSearchCmd.Flags().String("price-max", search.DefaultPriceMax.String(), "Maximum price")
	catalogSearchCmd.Flags().Int("rating", 0, "Minimum star rating")
	catalogSearchCmd.Flags().Bool("on-sale", false, "Only discounted products")
	catalogSearchCmd.Flags().Bool("popular", false, "Only popular products")

	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	products := store.All()
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		products = store.FindByCategory(models.Category(category))
	}
	return printProducts(cmd, products)
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	store, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	product, ok := store.FindBySlug(args[0])
	if !ok {
		return fmt.Errorf("product %q not found", args[0])
	}

	if format, _ := cmd.Flags().GetString("format"); format == "json" {
		return printJSON(cmd, product)
	}
	printProductDetail(cmd.OutOrStdout(), product)
	return nil
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	criteria, err := criteriaFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}
	return printProducts(cmd, search.Filter(store.All(), criteria))
}

func criteriaFromFlags(cmd *cobra.Command) (search.Criteria, error) {
	flags := cmd.Flags()
	criteria := search.DefaultCriteria()

	criteria.Query, _ = flags.GetString("query")
	criteria.Query = strings.TrimSpace(criteria.Query)

	categories, _ := flags.GetStringSlice("category")
	for _, c := range categories {
		criteria.Categories = append(criteria.Categories, models.Category(c))
	}

	skinTypes, _ := flags.GetStringSlice("skin-type")
	for _, tag := range skinTypes {
		skinType, ok := search.ParseSkinType(tag)
		if !ok {
			return criteria, fmt.Errorf("unknown skin type %q", tag)
		}
		criteria.SkinTypes = append(criteria.SkinTypes, skinType)
	}

	criteria.KeyIngredients, _ = flags.GetStringSlice("ingredient")

	for name, dst := range map[string]*decimal.Decimal{
		"price-min": &criteria.PriceRange.Min,
		"price-max": &criteria.PriceRange.Max,
	} {
		raw, _ := flags.GetString(name)
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid --%s: %w", name, err)
		}
		*dst = v
	}
	if criteria.PriceRange.Min.GreaterThan(criteria.PriceRange.Max) {
		return criteria, fmt.Errorf("--price-min must not exceed --price-max")
	}

	criteria.MinRating, _ = flags.GetInt("rating")
	if criteria.MinRating < 0 || criteria.MinRating > 5 {
		return criteria, fmt.Errorf("--rating must be between 0 and 5")
	}
	criteria.OnSale, _ = flags.GetBool("on-sale")
	criteria.Popular, _ = flags.GetBool("popular")

	return criteria, nil
}
