package lifecycle

import (
	"fmt"
	"time"

	"hazardpoint/internal/domain"
	"hazardpoint/pkg/e"
)

// Evaluate derives a hazard's display status from its stored attributes and
// an explicit reference time. It never reads the system clock or mutates the
// hazard, so both the read path and the action handlers can call it freely.
//
// Rules, first match wins:
//  1. resolved_at set                -> resolved
//  2. permanent                      -> active
//  3. auto_expire, now >= expires_at -> expired (boundary inclusive)
//  4. seasonal, month not in pattern -> dormant
//  5. otherwise                      -> active
//
// loc is the timezone used for the seasonal month test; nil means UTC.
// An auto_expire hazard with no expires_at is a stored-invariant fault: the
// status is reported as expired defensively and an integrity error is
// returned alongside it.
func Evaluate(h *domain.Hazard, now time.Time, loc *time.Location) (domain.DisplayStatus, error) {
	const op = "lifecycle.Evaluate"

	if h.ResolvedAt != nil {
		return domain.StatusResolved, nil
	}

	switch h.ExpirationType {
	case domain.ExpirationPermanent:
		return domain.StatusActive, nil

	case domain.ExpirationAutoExpire:
		if h.ExpiresAt == nil {
			return domain.StatusExpired, fmt.Errorf("%s: auto_expire hazard %s has no expires_at: %w", op, h.ID, e.ErrIntegrity)
		}
		if !now.Before(*h.ExpiresAt) {
			return domain.StatusExpired, nil
		}
		return domain.StatusActive, nil

	case domain.ExpirationSeasonal:
		if loc == nil {
			loc = time.UTC
		}
		month := int(now.In(loc).Month())
		for _, m := range h.SeasonalMonths {
			if m == month {
				return domain.StatusActive, nil
			}
		}
		return domain.StatusDormant, nil

	case domain.ExpirationUserResolvable:
		// Active until resolved_at is set by the quorum tracker or a moderator.
		return domain.StatusActive, nil

	default:
		return domain.StatusExpired, fmt.Errorf("%s: hazard %s has unknown expiration_type %q: %w", op, h.ID, h.ExpirationType, e.ErrIntegrity)
	}
}

// Location resolves an IANA timezone name, falling back to UTC when the name
// is empty or unknown.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
