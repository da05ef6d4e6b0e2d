// Seeds the hosted store with the standard rental packages and the DJ-rate
// settings row. Safe to re-run: rows are upserted by id.
package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"soundhire/internal/domain"
	"soundhire/internal/store"
)

func main() {
	_ = godotenv.Load()

	client, err := store.New(
		strings.TrimSpace(os.Getenv("SUPABASE_URL")),
		strings.TrimSpace(os.Getenv("SUPABASE_ANON_KEY")),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	packageRepo := store.NewPackageRepository(client)
	settingRepo := store.NewSettingRepository(client)

	log.Println("Seeding packages...")
	packages := []domain.Package{
		{
			ID:          1,
			Name:        "Basic",
			Description: "2 speakers, 1 mixer, 2 microphones. Enough for small gatherings.",
			DailyRate:   250000,
			Stock:       5,
		},
		{
			ID:          2,
			Name:        "Standard",
			Description: "4 speakers, mixer, 2 wireless microphones, basic lighting.",
			DailyRate:   300000,
			Stock:       3,
		},
		{
			ID:          3,
			Name:        "Premium",
			Description: "Full PA system, stage monitors, wireless microphones, full lighting rig.",
			DailyRate:   750000,
			Stock:       2,
		},
	}
	if err := packageRepo.Upsert(ctx, packages); err != nil {
		log.Fatal("Seeding packages failed:", err)
	}
	log.Printf("Seeded %d packages", len(packages))

	log.Println("Seeding DJ rate...")
	if err := settingRepo.SetDJRate(ctx, domain.DefaultDJRate); err != nil {
		log.Fatal("Seeding DJ rate failed:", err)
	}
	log.Println("Done")
}
