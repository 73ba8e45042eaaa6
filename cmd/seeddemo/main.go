// Command seeddemo wipes and repopulates the database with demo data:
// three categories, three products with inventory, and a spread of sales
// over the last 90 days. Intended for local development only.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"shopstock/internal/config"
	"shopstock/internal/infra"
	"shopstock/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var channels = []model.SalesChannel{
	model.ChannelOnline,
	model.ChannelRetail,
	model.ChannelEmail,
	model.ChannelPhone,
	model.ChannelSocialMedia,
	model.ChannelOther,
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	// Hard delete in dependency order. This is a demo reset, not a soft delete.
	for _, m := range []interface{}{
		&model.Sale{}, &model.InventoryLog{}, &model.Inventory{}, &model.Product{}, &model.Category{},
	} {
		if err := db.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to clear table")
		}
	}

	categories := []model.Category{
		{Name: "Electronics", Description: ptr("Gadgets and devices")},
		{Name: "Home Appliances", Description: ptr("Kitchen and home utilities")},
		{Name: "Books", Description: ptr("Fiction, non-fiction, educational")},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed categories")
	}

	products := []model.Product{
		{Name: "Smartphone", Price: decimal.RequireFromString("699.99"), Description: ptr("Latest model"), CategoryID: &categories[0].ID},
		{Name: "Microwave", Price: decimal.RequireFromString("149.99"), Description: ptr("800W microwave"), CategoryID: &categories[1].ID},
		{Name: "Python Book", Price: decimal.RequireFromString("39.99"), Description: ptr("Learn Python"), CategoryID: &categories[2].ID},
	}
	if err := db.Create(&products).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed products")
	}

	for _, p := range products {
		inv := model.Inventory{ProductID: p.ID, Stock: rand.Intn(91) + 10}
		if err := db.Create(&inv).Error; err != nil {
			log.Fatal().Err(err).Msg("failed to seed inventory")
		}
	}

	now := time.Now().UTC()
	for _, p := range products {
		for i := 0; i < 10; i++ {
			email := fmt.Sprintf("user%d@example.com", i)
			sale := model.Sale{
				ProductID:     p.ID,
				Quantity:      1,
				TotalPrice:    p.Price,
				SaleDate:      now.AddDate(0, 0, -rand.Intn(91)),
				Channel:       channels[rand.Intn(len(channels))],
				CustomerEmail: &email,
			}
			if err := db.Create(&sale).Error; err != nil {
				log.Fatal().Err(err).Msg("failed to seed sales")
			}
		}
	}

	log.Info().Msg("demo data created successfully")
}

func ptr(s string) *string { return &s }
