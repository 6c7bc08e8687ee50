package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the product catalog",
	Long: `List the products available for content generation.

Examples:
  brandboost products
  brandboost products --csv path/to/catalog.csv`,
	RunE: runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	// LipGloss signature purple/pink palette
	var (
		headerColor  = lipgloss.Color("#F780FF") // Bright pink/magenta
		idColor      = lipgloss.Color("#BD93F9") // Purple
		textColor    = lipgloss.Color("#E9E9F4") // Light purple/white
		priceColor   = lipgloss.Color("#FF79C6") // Pink
		borderColor  = lipgloss.Color("#6272A4") // Muted purple
		summaryColor = lipgloss.Color("#8BE9FD") // Cyan accent
	)

	// Column widths
	const (
		idWidth        = 8
		nameWidth      = 22
		categoryWidth  = 14
		priceWidth     = 10
		highlightWidth = 24
		audienceWidth  = 26
	)

	// Header style
	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true).
		Padding(0, 1)

	// Border separator
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	// Print header
	headers := []string{
		headerStyle.Width(idWidth).Render("ID"),
		headerStyle.Width(nameWidth).Render("PRODUCT"),
		headerStyle.Width(categoryWidth).Render("CATEGORY"),
		headerStyle.Width(priceWidth).Render("PRICE"),
		headerStyle.Width(highlightWidth).Render("HIGHLIGHT"),
		headerStyle.Width(audienceWidth).Render("AUDIENCE"),
	}
	fmt.Println(strings.Join(headers, borderStyle.Render("│")))

	// Print separator line
	separatorParts := []string{
		strings.Repeat("─", idWidth),
		strings.Repeat("─", nameWidth),
		strings.Repeat("─", categoryWidth),
		strings.Repeat("─", priceWidth),
		strings.Repeat("─", highlightWidth),
		strings.Repeat("─", audienceWidth),
	}
	fmt.Println(borderStyle.Render(strings.Join(separatorParts, "┼")))

	// Print data rows
	for _, p := range products {
		idStyle := lipgloss.NewStyle().
			Foreground(idColor).
			Padding(0, 1).
			Width(idWidth)

		nameStyle := lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1).
			Width(nameWidth)

		categoryStyle := lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1).
			Width(categoryWidth)

		priceStyle := lipgloss.NewStyle().
			Foreground(priceColor).
			Padding(0, 1).
			Width(priceWidth).
			Align(lipgloss.Right)

		highlightStyle := lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1).
			Width(highlightWidth)

		audienceStyle := lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1).
			Width(audienceWidth)

		cells := []string{
			idStyle.Render(p.ID),
			nameStyle.Render(p.Name),
			categoryStyle.Render(p.Category),
			priceStyle.Render(fmt.Sprintf("€%.2f", p.Price)),
			highlightStyle.Render(p.LeadAttribute()),
			audienceStyle.Render(p.Audience),
		}
		fmt.Println(strings.Join(cells, borderStyle.Render("│")))
	}

	// Summary
	fmt.Println()
	summaryStyle := lipgloss.NewStyle().
		Foreground(summaryColor).
		Italic(true)

	summary := fmt.Sprintf("Total: %d products (catalog: %s)", len(products), cfg.CSVPath)
	fmt.Println(summaryStyle.Render(summary))

	return nil
}
