package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"carenest/models"
	"carenest/upstream"
)

// profileCacheTTL bounds how long an enrichment snapshot stays usable.
const profileCacheTTL = 5 * time.Minute

// enrichInterval spaces sequential profile fetches so a large dashboard does
// not burst the core API.
const enrichInterval = 50 * time.Millisecond

// Enricher performs the lazy profile lookups that fill in counterpart names
// missing from booking list responses. Lookups are deduplicated by user id,
// throttled, and cached; a failed lookup is logged and skipped so the booking
// still renders with a fallback label.
type Enricher struct {
	Profiles upstream.ProfileAPI
	Cache    *redis.Client
	Logger   *zap.Logger

	limiter *rate.Limiter
}

// NewEnricher wires an enricher. Cache may be nil, in which case every
// distinct id costs one fetch per call.
func NewEnricher(profiles upstream.ProfileAPI, cache *redis.Client, logger *zap.Logger) *Enricher {
	return &Enricher{
		Profiles: profiles,
		Cache:    cache,
		Logger:   logger,
		limiter:  rate.NewLimiter(rate.Every(enrichInterval), 1),
	}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

// Profile returns a snapshot for the user, consulting the cache first.
func (e *Enricher) Profile(ctx context.Context, userID string) (*models.ProfileSnapshot, error) {
	if e.Cache != nil {
		if data, err := e.Cache.Get(ctx, profileKey(userID)).Result(); err == nil {
			var cached models.ProfileSnapshot
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	profile, err := e.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if e.Cache != nil {
		if data, err := json.Marshal(profile); err == nil {
			if err := e.Cache.Set(ctx, profileKey(userID), data, profileCacheTTL).Err(); err != nil {
				e.Logger.Debug("profile cache write failed", zap.String("userId", userID), zap.Error(err))
			}
		}
	}
	return profile, nil
}

// EnrichView fills missing counterpart profiles across the whole dashboard.
func (e *Enricher) EnrichView(ctx context.Context, role string, view *models.DashboardView) {
	all := make([]*models.Booking, 0, 1+len(view.Upcoming)+len(view.History))
	if view.Active != nil {
		all = append(all, view.Active)
	}
	for i := range view.Upcoming {
		all = append(all, &view.Upcoming[i])
	}
	for i := range view.History {
		all = append(all, &view.History[i])
	}
	e.EnrichBookings(ctx, role, all)
}

// EnrichBookings fetches each distinct missing counterpart exactly once and
// assigns the snapshot to every booking sharing that counterpart.
func (e *Enricher) EnrichBookings(ctx context.Context, role string, bookings []*models.Booking) {
	// Distinct counterpart ids with a missing or unnamed profile, in first
	// appearance order.
	var order []string
	need := make(map[string][]*models.Booking)
	for _, b := range bookings {
		profile := b.CounterpartProfile(role)
		if profile != nil && profile.Name != "" {
			continue
		}
		id := b.CounterpartID(role)
		if id == "" {
			continue
		}
		if _, seen := need[id]; !seen {
			order = append(order, id)
		}
		need[id] = append(need[id], b)
	}

	for _, id := range order {
		profile, err := e.Profile(ctx, id)
		if err != nil {
			// Partial-failure policy: the booking is still usable without a
			// name, so log and move on.
			e.Logger.Warn("profile enrichment failed",
				zap.String("userId", id), zap.Error(err))
			continue
		}
		for _, b := range need[id] {
			if role == models.RoleNanny {
				b.Parent = profile
			} else {
				b.Nanny = profile
			}
		}
	}
}
