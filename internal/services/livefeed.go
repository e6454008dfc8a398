package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"banglabet-backend/internal/models"
)

// Broadcaster fans a live-match snapshot out to connected listeners.
// Delivery is best effort: a disconnected listener simply misses the cycle.
type Broadcaster interface {
	BroadcastLiveMatches(snapshots []models.LiveMatchSnapshot)
}

// RunLiveFeed pushes the current live-match state to the broadcaster on a
// fixed interval until the context is cancelled. Its only shared resource
// is read access to the match store.
func RunLiveFeed(ctx context.Context, store *Store, b Broadcaster, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info().Dur("interval", interval).Msg("live feed started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("live feed stopped")
			return
		case <-ticker.C:
			b.BroadcastLiveMatches(store.LiveMatchSnapshots())
		}
	}
}
