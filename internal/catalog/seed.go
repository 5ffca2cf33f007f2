// internal/catalog/seed.go
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/javajoker/cleantheory-backend/internal/models"
)

//go:embed catalog.yaml
var seedYAML []byte

type seedFile struct {
	Products []models.Product `yaml:"products"`
}

// Decode reads a YAML catalog document. Unknown keys are rejected so typos in
// hand-edited seed files fail loudly.
func Decode(r io.Reader) ([]models.Product, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file seedFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	return file.Products, nil
}

// SeedProducts returns the products compiled into the binary.
func SeedProducts() ([]models.Product, error) {
	return Decode(bytes.NewReader(seedYAML))
}

// LoadEmbedded builds a Store from the compiled-in catalog.
func LoadEmbedded() (*Store, error) {
	products, err := SeedProducts()
	if err != nil {
		return nil, err
	}
	return New(products)
}
