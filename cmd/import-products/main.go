// Command import-products loads products from a CSV file into the database.
//
// Expected columns: name, description, price, stock, manufacturer, category.
// Rows are upserted by slug so the import can be re-run safely.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Kristian-01/nine27-mobile/database"
	"github.com/Kristian-01/nine27-mobile/models"
	"github.com/Kristian-01/nine27-mobile/pkg/logger"
	"github.com/Kristian-01/nine27-mobile/repository"
)

func main() {
	filePath := flag.String("file", "", "Path to the CSV file")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: import-products -file <path.csv>")
	}

	_ = godotenv.Load()
	logger.Initialize(getEnv("APP_ENV", "development"))
	defer logger.Log.Sync()

	db, err := database.Connect(database.Config{
		Host:     getEnv("POSTGRES_HOST", "localhost"),
		Port:     getEnv("POSTGRES_PORT", "5432"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		TimeZone: getEnv("POSTGRES_TIMEZONE", "UTC"),
	})
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	file, err := os.Open(*filePath)
	if err != nil {
		logger.Log.Fatal("Failed to open file", zap.String("path", *filePath), zap.Error(err))
	}
	defer file.Close()

	productRepo := repository.NewGormProductRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)

	imported, skipped := runImport(context.Background(), csv.NewReader(file), productRepo, categoryRepo)
	logger.Log.Info("Import finished", zap.Int("imported", imported), zap.Int("skipped", skipped))
}

func runImport(ctx context.Context, reader *csv.Reader, products repository.ProductRepository, categories repository.CategoryRepository) (imported, skipped int) {
	reader.FieldsPerRecord = -1

	// Header row
	if _, err := reader.Read(); err != nil {
		logger.Log.Fatal("Failed to read CSV header", zap.Error(err))
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Log.Warn("Skipping malformed row", zap.Error(err))
			skipped++
			continue
		}

		product, categorySlug, ok := parseRow(record)
		if !ok {
			skipped++
			continue
		}

		if err := products.UpsertBySlug(ctx, product); err != nil {
			logger.Log.Warn("Failed to upsert product", zap.String("slug", product.Slug), zap.Error(err))
			skipped++
			continue
		}

		if categorySlug != "" {
			if err := linkCategory(ctx, products, categories, product, categorySlug); err != nil {
				logger.Log.Warn("Failed to link category",
					zap.String("product", product.Slug),
					zap.String("category", categorySlug),
					zap.Error(err))
			}
		}

		imported++
	}
	return imported, skipped
}

func parseRow(record []string) (*models.Product, string, bool) {
	if len(record) < 4 {
		return nil, "", false
	}

	name := strings.TrimSpace(record[0])
	if name == "" {
		return nil, "", false
	}

	price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
	if err != nil || price.IsNegative() {
		return nil, "", false
	}

	stock, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil || stock < 0 {
		stock = 0
	}

	product := &models.Product{
		Name:        name,
		Slug:        slugify(name),
		Description: strings.TrimSpace(record[1]),
		Price:       price,
		Stock:       stock,
		Unit:        "piece",
		IsActive:    true,
	}
	if len(record) > 4 {
		product.Manufacturer = strings.TrimSpace(record[4])
	}

	categorySlug := ""
	if len(record) > 5 {
		categorySlug = slugify(strings.TrimSpace(record[5]))
	}
	return product, categorySlug, true
}

func linkCategory(ctx context.Context, products repository.ProductRepository, categories repository.CategoryRepository, product *models.Product, slug string) error {
	found, err := categories.FindBySlugs(ctx, []string{slug})
	if err != nil {
		return err
	}

	var category models.Category
	if len(found) > 0 {
		category = found[0]
	} else {
		category = models.Category{Name: titleFromSlug(slug), Slug: slug}
		if err := categories.Create(ctx, &category); err != nil {
			return err
		}
	}

	return products.ReplaceCategories(ctx, product, []models.Category{category})
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
