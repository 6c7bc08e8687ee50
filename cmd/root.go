package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/brandboost/brandboost/internal/catalog"
	"github.com/brandboost/brandboost/internal/config"
	"github.com/brandboost/brandboost/internal/content"
)

var (
	csvPath string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "brandboost",
	Short: "BrandBoost - AI marketing copy generator",
	Long: `BrandBoost generates marketing copy for product catalogs: descriptions,
social media posts and marketing emails in four tones and two languages.

Copy comes from an OpenAI-compatible endpoint when an API key is
configured, and from deterministic templates otherwise, so every request
yields usable text. Session analytics track time and cost saved against
manual copywriting.`,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&csvPath, "csv", "", "Catalog CSV path (default from BRANDBOOST_CSV)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Show detailed progress")
}

// loadConfig resolves settings from the environment and the global flags.
func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if csvPath != "" {
		cfg.CSVPath = csvPath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadCatalog reads the product catalog configured for the session.
func loadCatalog(cfg config.Config) ([]catalog.Product, error) {
	products, err := catalog.Load(cfg.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", cfg.CSVPath, err)
	}
	return products, nil
}

// newGenerator builds the remote generation client. A nil generator means
// no API key is configured and the surfaces render fallback copy only.
func newGenerator(cfg config.Config) (*content.Generator, error) {
	if cfg.APIKey == "" {
		return nil, nil
	}

	llmConfig := cfg.LLMConfig()
	llm, err := content.NewOpenAILLM(llmConfig)
	if err != nil {
		return nil, err
	}
	return content.NewGenerator(llm, llmConfig, cfg.RetryPolicy()), nil
}

// findProduct resolves a --product value by ID first, then by name.
func findProduct(products []catalog.Product, key string) (catalog.Product, error) {
	if p, ok := catalog.FindByID(products, key); ok {
		return p, nil
	}
	if p, ok := catalog.FindByName(products, key); ok {
		return p, nil
	}
	return catalog.Product{}, fmt.Errorf("unknown product %q (run 'brandboost products' to list the catalog)", key)
}
