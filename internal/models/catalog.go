package models

import "time"

type SlotGame struct {
	ID         int64  `json:"id"`
	Name       string `json:"name" binding:"required"`
	Provider   string `json:"provider" binding:"required"`
	Category   string `json:"category"`
	ImageURL   string `json:"image_url"`
	IsPopular  bool   `json:"is_popular"`
	IsFeatured bool   `json:"is_featured"`
}

type LiveCasinoGame struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" binding:"required"`
	Provider  string `json:"provider" binding:"required"`
	Category  string `json:"category"`
	ImageURL  string `json:"image_url"`
	IsPopular bool   `json:"is_popular"`
}

type MatchOdds struct {
	Home float64 `json:"home"`
	Draw float64 `json:"draw"`
	Away float64 `json:"away"`
}

type MatchScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type MatchStatistics struct {
	HomePossession int `json:"home_possession"`
	AwayPossession int `json:"away_possession"`
	HomeShots      int `json:"home_shots"`
	AwayShots      int `json:"away_shots"`
	HomeCorners    int `json:"home_corners"`
	AwayCorners    int `json:"away_corners"`
}

type SportMatch struct {
	ID         int64            `json:"id"`
	SportType  string           `json:"sport_type" binding:"required"`
	League     string           `json:"league"`
	HomeTeam   string           `json:"home_team" binding:"required"`
	AwayTeam   string           `json:"away_team" binding:"required"`
	StartTime  time.Time        `json:"start_time"`
	MatchTime  string           `json:"match_time,omitempty"`
	IsLive     bool             `json:"is_live"`
	Odds       MatchOdds        `json:"odds"`
	Score      *MatchScore      `json:"score,omitempty"`
	Statistics *MatchStatistics `json:"statistics,omitempty"`
}

type Promotion struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	BonusAmount string `json:"bonus_amount,omitempty"`
	IsFeatured  bool   `json:"is_featured"`
}

type DepositPhone struct {
	ID          int64  `json:"id"`
	Provider    string `json:"provider" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	IsActive    bool   `json:"is_active"`
}

// DepositPhoneUpdate patches a deposit phone; nil fields are untouched.
type DepositPhoneUpdate struct {
	Provider    *string `json:"provider"`
	PhoneNumber *string `json:"phone_number"`
	IsActive    *bool   `json:"is_active"`
}

// LiveMatchSnapshot is the per-match payload pushed over the live-update
// channel. Only matches with IsLive set are ever included.
type LiveMatchSnapshot struct {
	ID         int64            `json:"id"`
	HomeTeam   string           `json:"home_team"`
	AwayTeam   string           `json:"away_team"`
	Score      *MatchScore      `json:"score,omitempty"`
	MatchTime  string           `json:"match_time,omitempty"`
	Statistics *MatchStatistics `json:"statistics,omitempty"`
}
