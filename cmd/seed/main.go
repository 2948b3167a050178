package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/auth"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/events"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/seats"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/settings"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/database"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/cache"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

const seedAdmin = "seed"

// Tier prices stored as settings, used when a layout section has no price
var tierPrices = map[pricing.Category]float64{
	pricing.CategoryVVIP:   1500,
	pricing.CategoryVIP:    1000,
	pricing.CategoryGold:   600,
	pricing.CategorySilver: 400,
	pricing.CategoryBronze: 250,
}

type Seeder struct {
	auth     auth.Service
	settings settings.Service
	events   events.Service
	seats    seats.Service
}

func main() {
	fmt.Println("🌱 Starting Arena Database Seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg, logger.GetDefault())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := NewSeeder(cfg, db)
	if err := seeder.SeedAll(context.Background()); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

func NewSeeder(cfg *config.Config, db *database.DB) *Seeder {
	quiet := logger.NewDiscard()

	// Writes go straight to Postgres; the server's cache expires on its own
	cacheService := cache.NewMemory()

	settingsService := settings.NewService(settings.NewRepository(db.GetPostgreSQL()), cacheService, cfg.Defaults, quiet)
	eventService := events.NewService(events.NewRepository(db.GetPostgreSQL()), cacheService, settingsService, cfg.Defaults.BronzePrice, quiet)
	seatService := seats.NewService(seats.NewRepository(db.GetPostgreSQL()), eventService, settingsService, cacheService, quiet)
	eventService.SetSeatPrices(seatService)

	return &Seeder{
		auth:     auth.NewService(auth.NewRepository(db.GetPostgreSQL()), cfg, quiet),
		settings: settingsService,
		events:   eventService,
		seats:    seatService,
	}
}

// SeedAll creates what is missing and leaves existing data alone
func (s *Seeder) SeedAll(ctx context.Context) error {
	if err := s.SeedAdmin(ctx); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	if err := s.SeedSettings(ctx); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}

	existing, err := s.events.GetAllEvents(ctx, events.EventListQuery{Page: 1, Limit: 1})
	if err != nil {
		return fmt.Errorf("failed to list events: %w", err)
	}
	if existing.TotalCount > 0 {
		fmt.Println("  ✅ Events already exist. Skipping sample event.")
		return nil
	}

	if err := s.SeedSampleEvent(ctx); err != nil {
		return fmt.Errorf("failed to seed sample event: %w", err)
	}
	return nil
}

func (s *Seeder) SeedAdmin(ctx context.Context) error {
	fmt.Println("  👤 Seeding admin...")

	resp, err := s.auth.Setup(ctx, &auth.SetupRequest{})
	if err != nil {
		return err
	}
	if resp.Created {
		fmt.Printf("    ✅ Default admin created (username: %s)\n", resp.Username)
	} else {
		fmt.Println("    ✅ Admin user already exists. Skipping creation.")
	}
	return nil
}

func (s *Seeder) SeedSettings(ctx context.Context) error {
	fmt.Println("  ⚙️  Seeding settings...")

	defaults := map[string]string{settings.KeyCurrency: "D.K"}
	for category, price := range tierPrices {
		defaults[pricing.SettingKey(string(category))] = fmt.Sprintf("%g", price)
	}

	for key, value := range defaults {
		_, err := s.settings.Get(ctx, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, settings.ErrSettingNotFound) {
			return err
		}
		if _, err := s.settings.Set(ctx, key, value, seedAdmin); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
		fmt.Printf("    ✅ %s = %s\n", key, value)
	}
	return nil
}

// SeedSampleEvent creates one event with two show dates and a seat map on each
func (s *Seeder) SeedSampleEvent(ctx context.Context) error {
	fmt.Println("  🎭 Seeding sample event...")

	first := time.Now().UTC().AddDate(0, 0, 14).Truncate(24 * time.Hour).Add(20 * time.Hour)
	second := first.AddDate(0, 0, 1)

	event, err := s.events.CreateEvent(ctx, seedAdmin, events.CreateEventRequest{
		Title:       "ليلة الطرب العربي",
		Description: "حفل موسيقي على مسرح الأرينا",
		Dates:       []time.Time{first, second},
		Venue:       "Arena",
		Category:    "حفلات",
	})
	if err != nil {
		return err
	}
	fmt.Printf("    ✅ Created event: %s (%s)\n", event.Title, event.ID)

	vvip := 1500.0
	sections := []seats.SectionLayout{
		{Name: "Floor A", Category: string(pricing.CategoryVVIP), Rows: []string{"A", "B"}, SeatsPerRow: 12, Price: &vvip},
		{Name: "Floor B", Category: string(pricing.CategoryVIP), Rows: []string{"C", "D", "E"}, SeatsPerRow: 16},
		{Name: "Stands", Category: string(pricing.CategoryGold), Rows: []string{"F", "G", "H"}, SeatsPerRow: 20},
		{Name: "Upper", Category: string(pricing.CategoryBronze), Rows: []string{"J", "K"}, SeatsPerRow: 24},
	}

	for _, date := range []time.Time{first, second} {
		layout, err := s.seats.GenerateLayout(ctx, event.ID, seats.LayoutRequest{
			Date:     date.Format(events.DayLayout),
			Replace:  true,
			Sections: sections,
		})
		if err != nil {
			return fmt.Errorf("failed to generate seats for %s: %w", date.Format(events.DayLayout), err)
		}
		fmt.Printf("    ✅ %d seats on %s\n", layout.Created, date.Format(events.DayLayout))
	}
	return nil
}
