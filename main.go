package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"tiki-sentiment-scraper/config"
	"tiki-sentiment-scraper/models"
	"tiki-sentiment-scraper/scraper/tiki"
	"tiki-sentiment-scraper/services"
	"tiki-sentiment-scraper/storage"
	"tiki-sentiment-scraper/utils"
)

func main() {
	mode := flag.String("mode", "collect", "run mode: collect or enrich")
	flag.Parse()

	logger := utils.NewLogger()
	cfg := config.Load()

	client, err := tiki.NewClient(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create HTTP client: %v", err)
	}

	switch *mode {
	case "collect":
		runCollect(cfg, client, logger)
	case "enrich":
		runEnrich(cfg, client, logger)
	default:
		logger.Fatal("Unknown mode %q (want collect or enrich)", *mode)
	}
}

func runCollect(cfg *config.Config, client *tiki.Client, logger *utils.Logger) {
	logger.Info("=== Tiki Sentiment Dataset Collector starting ===")
	logger.Info("Config — keywords: %d | categories: %d | reviews/product: %d | retries: %d",
		len(cfg.Keywords), len(cfg.CategoryPaths), cfg.ReviewsPerProduct, cfg.MaxRetries)

	ids := discoverProducts(cfg, client, logger)
	if ids.Size() == 0 {
		logger.Fatal("No products discovered. Exiting.")
	}
	logger.Info("Discovery complete — %d unique products", ids.Size())

	assembler := services.NewAssembler(client, client, logger)
	assembler.ProgressEvery = cfg.ProgressEvery
	if cfg.ProductPauseMaxMs > 0 {
		assembler.Pauser = utils.NewPauser(
			ms(cfg.ProductPauseMinMs), ms(cfg.ProductPauseMaxMs), cfg.Seed)
	}

	reviewsPerProduct := cfg.ReviewsPerProduct
	if !cfg.CollectReviews {
		reviewsPerProduct = 0
	}

	reviews, products := assembler.Assemble(ids.Values(), reviewsPerProduct)
	if len(products) == 0 {
		logger.Fatal("No products could be fetched. Exiting.")
	}

	balanced := services.NewBalancer(logger, cfg.Seed).Balance(reviews)

	saveDataset(cfg, logger, balanced, products)

	reportSvc := services.NewReportService(logger)
	reportSvc.Print(reportSvc.Generate(products, balanced))

	fmt.Printf("  Done. Dataset files → %s\n\n", cfg.OutputDir)
}

// discoverProducts unions the keyword-search, category-listing and pinned
// identifier sources into one deduplicated set. Each keyword and category
// is fault-isolated: one failing never stops the others.
func discoverProducts(cfg *config.Config, client *tiki.Client, logger *utils.Logger) *utils.IDSet {
	ids := utils.NewIDSet()

	for _, keyword := range cfg.Keywords {
		results, err := client.SearchProducts(keyword, cfg.SearchLimit)
		if err != nil {
			logger.Error("Keyword %q search failed: %v", keyword, err)
			continue
		}
		added := 0
		for _, r := range results {
			if ids.Add(r.ProductID) {
				added++
			}
		}
		logger.Info("🔍 Keyword %q — %d results, %d new", keyword, len(results), added)
	}

	ctx := context.Background()
	for _, path := range cfg.CategoryPaths {
		found, err := client.CategoryProductIDs(ctx, path, cfg.CategoryLimit)
		if err != nil {
			logger.Error("Category %q listing failed: %v", path, err)
			continue
		}
		added := ids.AddAll(found)
		logger.Info("📂 Category %q — %d ids, %d new", path, len(found), added)
	}

	if added := ids.AddAll(cfg.PinnedIDs); added > 0 {
		logger.Info("📌 Pinned ids — %d new", added)
	}

	return ids
}

func saveDataset(cfg *config.Config, logger *utils.Logger, reviews []*models.Review, products []*models.Product) {
	csvWriter, err := storage.NewCSVWriter(cfg.OutputDir)
	if err != nil {
		logger.Fatal("Failed to create CSV writer: %v", err)
	}
	jsonWriter, err := storage.NewJSONWriter(cfg.OutputDir)
	if err != nil {
		logger.Fatal("Failed to create JSON writer: %v", err)
	}

	writers := []storage.DatasetWriter{csvWriter, jsonWriter}
	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			logger.Error("PostgreSQL unavailable, skipping DB sink: %v", err)
		} else {
			writers = append(writers, pgWriter)
		}
	}

	for _, w := range writers {
		if err := w.WriteProducts(products); err != nil {
			logger.Error("Product table write failed: %v", err)
		}
		if err := w.WriteReviews(reviews); err != nil {
			logger.Error("Review table write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			logger.Error("Writer close failed: %v", err)
		}
	}

	logger.Info("Saved dataset: %d reviews from %d products", len(reviews), len(products))
}

func runEnrich(cfg *config.Config, client *tiki.Client, logger *utils.Logger) {
	logger.Info("=== Tiki Product Enrichment starting ===")
	logger.Info("Config — table: %s | pause: %d–%dms",
		cfg.ProductsCSVPath, cfg.EnrichPauseMinMs, cfg.EnrichPauseMaxMs)

	rows, err := storage.ReadProducts(cfg.ProductsCSVPath)
	if err != nil {
		logger.Fatal("Failed to read product table: %v", err)
	}
	logger.Info("Loaded %d product rows", len(rows))

	pauser := utils.NewPauser(ms(cfg.EnrichPauseMinMs), ms(cfg.EnrichPauseMaxMs), cfg.Seed)
	filled := services.NewEnricher(client, pauser, logger).Enrich(rows)

	if err := storage.WriteProducts(cfg.ProductsCSVPath, rows); err != nil {
		logger.Fatal("Failed to save enriched table: %v", err)
	}
	logger.Info("Enriched table saved to %s (%d rows filled)", cfg.ProductsCSVPath, filled)
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
