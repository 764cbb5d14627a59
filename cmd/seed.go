package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/fightpulse/combat-api/internal/database"
	"github.com/fightpulse/combat-api/internal/models"
	"github.com/fightpulse/combat-api/pkg/config"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Insert a small sample catalog of fighters, events, news and clubs. Existing records with the same name are kept.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if err := seedCatalog(db.DB); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Printf("[INFO] Sample catalog seeded at %s", cfg.Database.Path)
	return nil
}

func seedCatalog(db *gorm.DB) error {
	marchStart := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	juneStart := time.Date(2026, 6, 20, 19, 0, 0, 0, time.UTC)
	published := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	publishedLater := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	fighters := []models.Fighter{
		{Name: "Nikola Petrovic", Nickname: "The Belgrade Hammer", Country: "Serbia", WeightClass: "Heavyweight"},
		{Name: "Marko Jovanovic", Country: "Serbia", WeightClass: "Lightweight"},
		{Name: "Ana Kovac", Nickname: "Lightning", Country: "Croatia", WeightClass: "Strawweight"},
		{Name: "Ken Tanaka", Country: "Japan", WeightClass: "Bantamweight"},
	}
	for _, fighter := range fighters {
		if err := db.Where(models.Fighter{Name: fighter.Name}).FirstOrCreate(&fighter).Error; err != nil {
			return err
		}
	}

	events := []models.Event{
		{Name: "Belgrade Fight Night", City: "Belgrade", Country: "Serbia", StartAt: &marchStart},
		{Name: "Summer Showdown", City: "Novi Sad", Country: "Serbia", StartAt: &juneStart},
		{Name: "Tokyo Rumble", City: "Tokyo", Country: "Japan"},
	}
	for _, event := range events {
		if err := db.Where(models.Event{Name: event.Name}).FirstOrCreate(&event).Error; err != nil {
			return err
		}
	}

	news := []models.News{
		{Title: "Belgrade card announced", Excerpt: "The full card is set.", Content: "Full card for the Belgrade event.", Category: "MMA", AuthorName: "Ana Ilic", PublishAt: &published},
		{Title: "Petrovic injury update", Excerpt: "Camp continues.", Content: "Training camp news from Belgrade.", Category: "MMA", AuthorName: "Ana Ilic", PublishAt: &publishedLater},
		{Title: "Kickboxing rankings shake-up", Excerpt: "New contenders emerge.", Content: "New contenders emerge across divisions.", Category: "Kickboxing", AuthorName: "Jovan Simic", PublishAt: &published},
	}
	for _, article := range news {
		if err := db.Where(models.News{Title: article.Title}).FirstOrCreate(&article).Error; err != nil {
			return err
		}
	}

	clubs := []models.Club{
		{Name: "Belgrade Combat Club", City: "Belgrade", Country: "Serbia", Description: "Oldest MMA gym in the city."},
		{Name: "Red Star Boxing", City: "Belgrade", Country: "Serbia", Description: "Boxing and kickboxing programs."},
		{Name: "Osaka Dojo", City: "Osaka", Country: "Japan", Description: "Traditional and modern striking arts."},
	}
	for _, club := range clubs {
		if err := db.Where(models.Club{Name: club.Name}).FirstOrCreate(&club).Error; err != nil {
			return err
		}
	}

	return nil
}
