// Package adapters はcompaniesフィーチャーのカタログ実装を提供します。
package adapters

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"stock_prediction/internal/feature/companies/domain/entity"
)

// CatalogSize は予測対象企業の固定件数です。
const CatalogSize = 20

//go:embed companies.yaml
var defaultCatalog []byte

type catalogFile struct {
	Companies []entity.Company `yaml:"companies"`
}

// Catalog is the immutable, ordered company list loaded once at start-up.
type Catalog struct {
	companies []entity.Company
}

// LoadDefaultCatalog parses the embedded catalogue.
func LoadDefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalogue from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return LoadDefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read companies file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalogue.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse companies: %w", err)
	}
	if len(f.Companies) != CatalogSize {
		return nil, fmt.Errorf("companies: expected %d entries, got %d", CatalogSize, len(f.Companies))
	}

	seen := make(map[string]struct{}, len(f.Companies))
	out := make([]entity.Company, 0, len(f.Companies))
	for i, c := range f.Companies {
		c.Name = strings.TrimSpace(c.Name)
		c.Symbol = strings.ToUpper(strings.TrimSpace(c.Symbol))
		if c.Name == "" || c.Symbol == "" {
			return nil, fmt.Errorf("companies[%d]: name and symbol are required", i)
		}
		if _, dup := seen[c.Symbol]; dup {
			return nil, fmt.Errorf("companies[%d]: duplicate symbol %q", i, c.Symbol)
		}
		seen[c.Symbol] = struct{}{}
		out = append(out, c)
	}
	return &Catalog{companies: out}, nil
}

// All returns a copy of the catalogue in configured order.
func (c *Catalog) All() []entity.Company {
	out := make([]entity.Company, len(c.companies))
	copy(out, c.companies)
	return out
}
