package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CATALOG_SOURCE", "embedded")
	t.Setenv("LOG_LEVEL", "error")

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores defaults; cobra keeps parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestCatalogShow(t *testing.T) {
	out, err := runCLI(t, "catalog", "show", "hydra-luxe")
	require.NoError(t, err)
	assert.Contains(t, out, "hydra-luxe")
	assert.Contains(t, out, "$24.99")

	_, err = runCLI(t, "catalog", "show", "missing-product")
	assert.Error(t, err)
}

func TestCatalogSearchJSON(t *testing.T) {
	out, err := runCLI(t, "catalog", "search", "--format", "json",
		"--category", "Face Wash", "--on-sale", "--popular")
	require.NoError(t, err)

	var products []struct {
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "dermaquench", products[0].Slug)
	assert.Equal(t, "skinlogic-foam", products[1].Slug)
}

func TestCatalogList(t *testing.T) {
	out, err := runCLI(t, "catalog", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "15 products")

	out, err = runCLI(t, "catalog", "list", "--category", "Nope")
	require.NoError(t, err)
	assert.Contains(t, out, "No products found")
}

func TestCatalogSearchRejectsBadFlags(t *testing.T) {
	_, err := runCLI(t, "catalog", "search", "--skin-type", "Scaly")
	assert.ErrorContains(t, err, "unknown skin type")

	_, err = runCLI(t, "catalog", "search", "--price-min", "40", "--price-max", "10")
	assert.ErrorContains(t, err, "--price-min")
}
