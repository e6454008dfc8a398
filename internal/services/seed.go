package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"banglabet-backend/internal/config"
	"banglabet-backend/internal/models"
)

// Seed loads the default admin account and a small demo catalog into a
// fresh store. Demo content is illustrative only.
func Seed(store *Store, cfg *config.Config) error {
	hash, err := HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := store.CreateUser(&models.User{
		Username: "admin",
		Password: hash,
		FullName: "Site Admin",
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	isAdmin := true
	store.UpdateUser(admin.ID, models.UserUpdate{IsAdmin: &isAdmin})

	store.CreateSlotGame(&models.SlotGame{
		Name: "Super Ace", Provider: "JILI", Category: "slots", IsPopular: true,
	})
	store.CreateSlotGame(&models.SlotGame{
		Name: "Money Coming", Provider: "JILI", Category: "slots", IsFeatured: true,
	})
	store.CreateSlotGame(&models.SlotGame{
		Name: "Gates of Olympus", Provider: "Pragmatic Play", Category: "slots", IsPopular: true,
	})

	store.CreateLiveCasinoGame(&models.LiveCasinoGame{
		Name: "Crazy Time", Provider: "Evolution", Category: "game-show", IsPopular: true,
	})
	store.CreateLiveCasinoGame(&models.LiveCasinoGame{
		Name: "Lightning Roulette", Provider: "Evolution", Category: "roulette",
	})

	store.CreateSportMatch(&models.SportMatch{
		SportType: "cricket",
		League:    "Bangladesh Premier League",
		HomeTeam:  "Dhaka Dominators",
		AwayTeam:  "Chattogram Challengers",
		StartTime: time.Now().Add(-30 * time.Minute),
		MatchTime: "14.3 ov",
		IsLive:    true,
		Odds:      models.MatchOdds{Home: 1.85, Away: 2.05},
		Score:     &models.MatchScore{Home: 112, Away: 0},
	})
	store.CreateSportMatch(&models.SportMatch{
		SportType: "football",
		League:    "Premier League",
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
		StartTime: time.Now().Add(6 * time.Hour),
		Odds:      models.MatchOdds{Home: 2.10, Draw: 3.40, Away: 3.10},
	})

	store.CreatePromotion(&models.Promotion{
		Title:       "Welcome Bonus",
		Description: "100% bonus on your first deposit",
		BonusAmount: "500",
		IsFeatured:  true,
	})

	store.CreateDepositPhone(&models.DepositPhone{
		Provider: "bkash", PhoneNumber: "01700000001", IsActive: true,
	})
	store.CreateDepositPhone(&models.DepositPhone{
		Provider: "nagad", PhoneNumber: "01800000002", IsActive: true,
	})

	log.Info().Msg("seeded admin account and demo catalog")
	return nil
}
