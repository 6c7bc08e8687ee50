package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/brandboost/brandboost/internal/analytics"
	"github.com/brandboost/brandboost/internal/content"
	"github.com/brandboost/brandboost/internal/export"
)

var (
	genProduct  string
	genType     string
	genTone     string
	genLang     string
	genOut      string
	genFallback bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate marketing copy for one product",
	Long: `Generate one piece of marketing copy for a catalog product.

The remote model is asked first; on repeated failures the deterministic
fallback templates take over, so the command always prints usable copy.

Examples:
  brandboost generate --product P001
  brandboost generate --product "Wool Scarf" --type social --tone playful
  brandboost generate --product P002 --type email --lang fr --out copy.json
  brandboost generate --product P001 --fallback`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&genProduct, "product", "", "Product ID or name (required)")
	generateCmd.Flags().StringVar(&genType, "type", "description", "Content type: description, social_post, email")
	generateCmd.Flags().StringVar(&genTone, "tone", "professional", "Tone: professional, playful, luxury, casual")
	generateCmd.Flags().StringVar(&genLang, "lang", "en", "Language: en, fr")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Write the result to a file (.json for JSON, text otherwise)")
	generateCmd.Flags().BoolVar(&genFallback, "fallback", false, "Skip the remote model and render the template")
	_ = generateCmd.MarkFlagRequired("product")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	product, err := findProduct(products, genProduct)
	if err != nil {
		return err
	}

	ct, err := content.ParseContentType(genType)
	if err != nil {
		return err
	}
	tone, err := content.ParseTone(genTone)
	if err != nil {
		return err
	}
	lang, err := content.ParseLanguage(genLang)
	if err != nil {
		return err
	}

	req := content.Request{Product: product, Type: ct, Tone: tone, Language: lang}
	if err := req.Validate(); err != nil {
		return err
	}

	// Styling
	var (
		headerColor  = lipgloss.Color("#F780FF") // Bright pink
		copyColor    = lipgloss.Color("#E9E9F4") // Light purple/white
		metaColor    = lipgloss.Color("#6272A4") // Muted purple
		tipColor     = lipgloss.Color("#8BE9FD") // Cyan
		savingsColor = lipgloss.Color("#50FA7B") // Green
		noteColor    = lipgloss.Color("#FF5555") // Red
	)

	headerStyle := lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	copyStyle := lipgloss.NewStyle().Foreground(copyColor)
	metaStyle := lipgloss.NewStyle().Foreground(metaColor).Italic(true)
	tipStyle := lipgloss.NewStyle().Foreground(tipColor)
	savingsStyle := lipgloss.NewStyle().Foreground(savingsColor)
	noteStyle := lipgloss.NewStyle().Foreground(noteColor)

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	offline := genFallback || gen == nil

	if verbose {
		if offline {
			fmt.Println(metaStyle.Render("→ Rendering deterministic fallback template..."))
		} else {
			fmt.Println(metaStyle.Render("→ Asking " + cfg.Model + "..."))
		}
	}

	var res content.Result
	if offline {
		res = content.Fallback(req, "")
	} else {
		res, err = gen.Generate(ctx, req)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
	}

	engine := analytics.NewEngine(cfg.MinutesSaved, cfg.CostSaved)
	snap := engine.Record(res)

	fmt.Println()
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s · %s / %s / %s", product.Name, req.Type, req.Tone, req.Language)))
	fmt.Println()
	fmt.Println(copyStyle.Render(strings.TrimSpace(res.Text)))
	fmt.Println()

	meta := "source: " + string(res.Source)
	if res.Source == content.SourceRemote {
		meta += fmt.Sprintf(" · model: %s · attempts: %d · elapsed: %s",
			res.Model, res.Attempts, res.Elapsed.Round(time.Millisecond))
	}
	fmt.Println(metaStyle.Render(meta))

	if res.ErrorNote != "" {
		fmt.Println(noteStyle.Render("remote generation failed: " + res.ErrorNote))
	}
	if tip := content.Recommendation(req.Type, req.Tone); tip != "" {
		fmt.Println(tipStyle.Render("Tip: " + tip))
	}
	fmt.Println(savingsStyle.Render(fmt.Sprintf("✓ Saved ~%.0f min and €%.2f vs manual copywriting",
		snap.EventMinutes, snap.EventCost)))
	fmt.Println()

	if genOut != "" {
		if err := writeResultFile(req, res, genOut); err != nil {
			return err
		}
		fmt.Println(savingsStyle.Render("✓ Saved content to " + genOut))
	}

	return nil
}

func writeResultFile(req content.Request, res content.Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	format := "text"
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		format = "json"
	}
	return export.Write([]export.Record{export.FromResult(req, res)}, format, file)
}
