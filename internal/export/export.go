// Package export renders generated copy as shareable reports.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brandboost/brandboost/internal/content"
)

// Format represents supported export formats.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat marks an export format this package cannot render.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Record is one generated piece flattened for export.
type Record struct {
	ProductID   string    `json:"product_id,omitempty"`
	ProductName string    `json:"product_name"`
	ContentType string    `json:"content_type"`
	Tone        string    `json:"tone"`
	Language    string    `json:"language"`
	Source      string    `json:"source"`
	Text        string    `json:"text"`
	ErrorNote   string    `json:"error_note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromResult flattens a request and its result into an export record.
func FromResult(req content.Request, res content.Result) Record {
	return Record{
		ProductID:   req.Product.ID,
		ProductName: req.Product.Name,
		ContentType: string(req.Type),
		Tone:        string(req.Tone),
		Language:    string(req.Language),
		Source:      string(res.Source),
		Text:        res.Text,
		ErrorNote:   res.ErrorNote,
		CreatedAt:   res.CreatedAt,
	}
}

// Write renders records in the requested format.
func Write(records []Record, format string, w io.Writer) error {
	switch Format(strings.ToLower(format)) {
	case FormatJSON:
		return writeJSON(records, w)
	case FormatText:
		return writeText(records, w)
	}
	return fmt.Errorf("%w: %s (supported: text, json)", ErrUnsupportedFormat, format)
}

// SaveReport writes records as a text report under dir and returns the
// file path. The directory is created when missing.
func SaveReport(records []Record, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("brandboost_content_%d.txt", time.Now().Unix()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	if err := writeText(records, f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close report file: %w", err)
	}
	return path, nil
}

// writeJSON renders records as indented JSON.
func writeJSON(records []Record, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// writeText renders records as a human-readable report.
func writeText(records []Record, w io.Writer) error {
	var b strings.Builder

	b.WriteString("BrandBoost - Generated Content Export\n")
	b.WriteString("Generated on: " + time.Now().Format("2006-01-02 15:04:05") + "\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for i, rec := range records {
		b.WriteString(fmt.Sprintf("[%d] %s | %s | %s | %s | %s\n",
			i+1, rec.ProductName, rec.ContentType, rec.Tone, rec.Language, rec.Source))
		b.WriteString(strings.Repeat("-", 60) + "\n")
		b.WriteString(rec.Text + "\n")
		if rec.ErrorNote != "" {
			b.WriteString("Note: " + rec.ErrorNote + "\n")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
