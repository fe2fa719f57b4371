package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"gorm.io/gorm"
)

var seedQuotes = []string{
	"A vida é o que acontece enquanto você está ocupado fazendo outros planos.",
	"O único modo de fazer um excelente trabalho é amar o que você faz.",
	"Não importa o quão devagar você vá, desde que você não pare.",
	"A imaginação é mais importante que o conhecimento.",
	"Seja a mudança que você deseja ver no mundo.",
	"O sucesso é ir de fracasso em fracasso sem perder o entusiasmo.",
	"Tudo o que somos é resultado do que pensamos.",
	"A persistência é o caminho do êxito.",
	"Quem tem um porquê enfrenta qualquer como.",
	"A simplicidade é o último grau de sofisticação.",
}

// SeedDemoData resets the database and populates it with demo authors,
// quotes and engagement rows.
//
// Behavior:
//  1. Clears existing rows in every domain table.
//  2. Creates 5 authors (2 verified) and 30 quotes, most approved+active,
//     a few pending or soft-deleted to exercise visibility filtering.
//  3. Generates reactions, views and shares with counters kept consistent
//     with the seeded rows.
//  4. Inserts the default site_settings rows.
//
// Compatible with both MySQL and SQLite.
func SeedDemoData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"reactions", "quote_views", "quote_shares", "quotes", "authors", "site_settings"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	// --- Authors ---
	authors := make([]Author, 0, 5)
	for i := 1; i <= 5; i++ {
		author := Author{
			AccountID:  fmt.Sprintf("account-%d", i),
			Name:       fmt.Sprintf("Autor %d", i),
			Bio:        fmt.Sprintf("Autor de frases número %d", i),
			IsVerified: i <= 2,
		}
		if err := db.Create(&author).Error; err != nil {
			return fmt.Errorf("failed to seed author: %w", err)
		}
		authors = append(authors, author)
	}
	log.Printf("Seeded %d authors.", len(authors))

	// --- Quotes ---
	quotes := make([]Quote, 0, 30)
	for i := 0; i < 30; i++ {
		author := authors[r.Intn(len(authors))]
		quote := Quote{
			AuthorID:   author.ID,
			Content:    seedQuotes[i%len(seedQuotes)],
			IsApproved: true,
			IsActive:   true,
			// spread creation times so feed ordering is meaningful
			CreatedAt: time.Now().UTC().Add(-time.Duration(i) * time.Hour),
		}
		switch {
		case i%10 == 7:
			quote.IsApproved = false // pending moderation
		case i%10 == 9:
			quote.IsActive = false // rejected, soft-deleted
		}
		if err := db.Create(&quote).Error; err != nil {
			return fmt.Errorf("failed to seed quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	log.Printf("Seeded %d quotes.", len(quotes))

	// --- Engagement ---
	for _, quote := range quotes {
		if !quote.IsApproved || !quote.IsActive {
			continue
		}

		var likes int64
		for _, author := range authors {
			if author.ID == quote.AuthorID || r.Intn(100) >= 40 {
				continue
			}
			reaction := Reaction{QuoteID: quote.ID, AuthorID: author.ID}
			if err := db.Create(&reaction).Error; err != nil {
				return fmt.Errorf("failed to seed reaction: %w", err)
			}
			likes++
		}

		views := int64(r.Intn(200))
		for v := int64(0); v < views; v += 20 {
			// one row per ~20 views keeps the seed fast; counters stay honest
			view := QuoteView{QuoteID: quote.ID}
			if err := db.Create(&view).Error; err != nil {
				return fmt.Errorf("failed to seed view: %w", err)
			}
		}

		shares := int64(r.Intn(10))
		updates := map[string]any{
			"likes_count":  likes,
			"views_count":  views,
			"shares_count": shares,
		}
		if err := db.Model(&Quote{}).Where("id = ?", quote.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update counters: %w", err)
		}
	}

	// --- Site settings ---
	settings := []SiteSetting{
		{Key: "ads_frequency", Value: "3"},
		{Key: "view_delay_ms", Value: "2000"},
		{Key: "feed_page_size", Value: "10"},
	}
	if err := db.Create(&settings).Error; err != nil {
		return fmt.Errorf("failed to seed site settings: %w", err)
	}

	return nil
}
