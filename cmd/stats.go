package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/brandboost/brandboost/internal/analytics"
	"github.com/brandboost/brandboost/internal/content"
)

var statsPieces int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Project session analytics for a content batch",
	Long: `Project the time and cost savings of a generation session.

Analytics are session-scoped: counters start at zero for every run and
nothing is persisted. The projection credits the configured per-piece
savings to --pieces generated items and derives ROI from the configured
writer and inference rates.

Examples:
  brandboost stats
  brandboost stats --pieces 20`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsPieces, "pieces", 5, "Number of generated pieces to project")
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsPieces < 1 {
		return fmt.Errorf("--pieces must be at least 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	engine := analytics.NewEngine(cfg.MinutesSaved, cfg.CostSaved)
	for i := 0; i < statsPieces; i++ {
		engine.Record(content.Result{Source: content.SourceRemote})
	}

	fmt.Println()
	renderKPITable(engine.Snapshot(), engine.ROI(cfg.WriterRate, cfg.AICost))
	return nil
}

// renderKPITable prints the session analytics block shared by batch and
// stats.
func renderKPITable(snap analytics.Snapshot, roi analytics.ROIReport) {
	var (
		headerColor = lipgloss.Color("#F780FF") // Bright pink
		labelColor  = lipgloss.Color("#BD93F9") // Purple
		valueColor  = lipgloss.Color("#FF79C6") // Pink
		borderColor = lipgloss.Color("#6272A4") // Muted purple
		noteColor   = lipgloss.Color("#8BE9FD") // Cyan accent
	)

	const (
		labelWidth = 20
		valueWidth = 28
	)

	headerStyle := lipgloss.NewStyle().Foreground(headerColor).Bold(true).Padding(0, 1)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	labelStyle := lipgloss.NewStyle().Foreground(labelColor).Padding(0, 1).Width(labelWidth)
	valueStyle := lipgloss.NewStyle().Foreground(valueColor).Padding(0, 1).Width(valueWidth).Align(lipgloss.Right)
	noteStyle := lipgloss.NewStyle().Foreground(noteColor).Italic(true)

	fmt.Println(headerStyle.Render("SESSION ANALYTICS"))
	fmt.Println(borderStyle.Render(strings.Repeat("─", labelWidth+valueWidth+1)))

	rows := []struct {
		label string
		value string
	}{
		{"Pieces generated", fmt.Sprintf("%d (remote %d / fallback %d)", snap.Pieces, snap.RemotePieces, snap.FallbackPieces)},
		{"Time saved", fmt.Sprintf("%.0f min", snap.MinutesSaved)},
		{"Cost saved", fmt.Sprintf("€%.2f", snap.CostSaved)},
		{"Manual cost", fmt.Sprintf("€%.2f", roi.ManualCost)},
		{"AI cost", fmt.Sprintf("€%.2f", roi.AICost)},
		{"Net savings", fmt.Sprintf("€%.2f", roi.NetSavings)},
		{"ROI", fmt.Sprintf("%.0f%%", roi.Percent)},
	}
	for _, row := range rows {
		fmt.Println(labelStyle.Render(row.label) + borderStyle.Render("│") + valueStyle.Render(row.value))
	}

	fmt.Println()
	fmt.Println(noteStyle.Render("Analytics are session-scoped; counters reset on every run."))
}
