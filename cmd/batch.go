package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/brandboost/brandboost/internal/analytics"
	"github.com/brandboost/brandboost/internal/catalog"
	"github.com/brandboost/brandboost/internal/content"
	"github.com/brandboost/brandboost/internal/orchestrator"
)

var (
	batchTypes    []string
	batchTones    []string
	batchLangs    []string
	batchProducts []string
	batchSave     bool
	batchOffline  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate copy for many products at once",
	Long: `Generate copy for the cross product of products, content types, tones
and languages. Combinations that do not validate are skipped and listed;
the rest are generated and counted in the session analytics.

Examples:
  brandboost batch
  brandboost batch --types description,social_post --tones playful
  brandboost batch --products P001,P002 --langs en,fr --save
  brandboost batch --fallback`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringSliceVar(&batchTypes, "types", []string{"description"}, "Content types to generate")
	batchCmd.Flags().StringSliceVar(&batchTones, "tones", []string{"professional"}, "Tones to generate")
	batchCmd.Flags().StringSliceVar(&batchLangs, "langs", []string{"en"}, "Languages to generate")
	batchCmd.Flags().StringSliceVar(&batchProducts, "products", nil, "Product IDs or names (default: whole catalog)")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "Save a text report to the reports directory")
	batchCmd.Flags().BoolVar(&batchOffline, "fallback", false, "Skip the remote model and render the templates")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	products, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	selected := products
	if len(batchProducts) > 0 {
		selected = make([]catalog.Product, 0, len(batchProducts))
		for _, key := range batchProducts {
			p, err := findProduct(products, key)
			if err != nil {
				return err
			}
			selected = append(selected, p)
		}
	}

	var types []content.ContentType
	for _, s := range batchTypes {
		ct, err := content.ParseContentType(s)
		if err != nil {
			return err
		}
		types = append(types, ct)
	}
	var tones []content.Tone
	for _, s := range batchTones {
		tone, err := content.ParseTone(s)
		if err != nil {
			return err
		}
		tones = append(tones, tone)
	}
	var langs []content.Language
	for _, s := range batchLangs {
		lang, err := content.ParseLanguage(s)
		if err != nil {
			return err
		}
		langs = append(langs, lang)
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	spec := orchestrator.BatchSpec{
		Products:  selected,
		Types:     types,
		Tones:     tones,
		Languages: langs,
		Offline:   batchOffline || gen == nil,
	}
	if batchSave {
		spec.SaveDir = cfg.ReportsDir
	}

	// Styling
	var (
		okColor   = lipgloss.Color("#50FA7B") // Green
		skipColor = lipgloss.Color("#6272A4") // Muted purple
		srcColor  = lipgloss.Color("#8BE9FD") // Cyan
	)

	okStyle := lipgloss.NewStyle().Foreground(okColor)
	skipStyle := lipgloss.NewStyle().Foreground(skipColor).Italic(true)
	srcStyle := lipgloss.NewStyle().Foreground(srcColor)

	if verbose {
		fmt.Println(skipStyle.Render(fmt.Sprintf("→ Generating %d products × %d types × %d tones × %d languages...",
			len(selected), len(types), len(tones), len(langs))))
	}

	engine := analytics.NewEngine(cfg.MinutesSaved, cfg.CostSaved)
	report, err := orchestrator.RunBatch(ctx, gen, engine, spec)
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	fmt.Println()
	for _, item := range report.Items {
		line := fmt.Sprintf("%s · %s / %s / %s",
			item.Request.Product.Name, item.Request.Type, item.Request.Tone, item.Request.Language)
		if item.Note != "" {
			fmt.Println(skipStyle.Render("– " + line + " · skipped: " + item.Note))
			continue
		}
		fmt.Println(okStyle.Render("✓ "+line) + srcStyle.Render(" · "+string(item.Result.Source)))
	}

	fmt.Println()
	renderKPITable(report.Snapshot, engine.ROI(cfg.WriterRate, cfg.AICost))

	if report.ReportPath != "" {
		fmt.Println(okStyle.Render("✓ Saved report to " + report.ReportPath))
	}

	return nil
}
