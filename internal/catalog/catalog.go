// Package catalog loads the read-only product catalog consumed by the
// generation pipeline. Products come from a flat CSV file read once at
// session start.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var (
	ErrEmptyCatalog = errors.New("catalog contains no products")
)

// Load reads the product catalog from a CSV file.
func Load(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	products, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return products, nil
}

// Parse reads catalog rows from r.
// Expected columns: id, name, category, price, attributes, audience.
// Attributes are semicolon separated; a leading header row is skipped.
func Parse(r io.Reader) ([]Product, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	var products []Product
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 5 {
			return nil, fmt.Errorf("row %d: expected at least 5 columns, got %d", i+1, len(row))
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", i+1, row[3], err)
		}

		p := Product{
			ID:         strings.TrimSpace(row[0]),
			Name:       strings.TrimSpace(row[1]),
			Category:   strings.TrimSpace(row[2]),
			Price:      price,
			Attributes: splitAttributes(row[4]),
		}
		if len(row) > 5 {
			p.Audience = strings.TrimSpace(row[5])
		}
		products = append(products, p)
	}

	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	return products, nil
}

// FindByID returns the product with the given identifier.
func FindByID(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindByName returns the first product whose name matches, case-insensitively.
func FindByName(products []Product, name string) (Product, bool) {
	for _, p := range products {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Product{}, false
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "id")
}

func splitAttributes(field string) []string {
	var attrs []string
	for _, part := range strings.Split(field, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		attrs = append(attrs, part)
	}
	return attrs
}
