package application

import (
	"context"
	"log"

	"mealbot/internal/domain"
	"mealbot/internal/ports/input"
)

// Reconcile resolves a hosted-checkout redirect. The pending-join
// marker for the correlation id is consumed first, unconditionally, so
// reconciliation runs at most once per redirect whatever happens after.
//
// A completed payment refreshes all three listings and then attempts
// the one-shot analytics attribution: look the joined event up in the
// freshly refreshed joined listing and, when found, record user, event
// and meal. The lookup may legitimately miss when the backend has not
// registered the participation yet; a miss is swallowed, not retried.
func (s *PaymentService) Reconcile(ctx context.Context, correlationID, checkoutSessionID string) (*input.Reconciliation, error) {
	marker, err := s.pending.Consume(ctx, correlationID)
	if err != nil {
		log.Printf("❌ Pending-join consume failed (ref=%s): %v", correlationID, err)
		return nil, err
	}
	if marker == nil {
		// Already consumed or never written; nothing to attribute the
		// redirect to.
		return nil, domain.ErrEventNotFound
	}
	rec := &input.Reconciliation{DiscordUserID: marker.DiscordUserID}

	sess, err := s.sessions.Current(ctx, marker.DiscordUserID)
	if err != nil {
		log.Printf("⚠️ Session lookup failed during reconciliation: %v", err)
	}
	status, err := s.payments.SessionStatus(ctx, sess, checkoutSessionID)
	if err != nil {
		log.Printf("❌ Checkout session lookup failed (session=%s): %v", checkoutSessionID, err)
		return rec, err
	}
	if status.Status != domain.CheckoutComplete {
		return rec, nil
	}
	rec.Completed = true

	listings, err := s.listings.Listings(ctx, marker.DiscordUserID)
	if err != nil {
		log.Printf("⚠️ Listing refresh failed after checkout: %v", err)
		return rec, nil
	}
	rec.Listings = listings

	if sess == nil || sess.User == nil {
		return rec, nil
	}
	for i := range listings.Joined {
		event := &listings.Joined[i]
		if event.ID != marker.EventID {
			continue
		}
		meal, err := s.meals.Get(ctx, event.MealID)
		if err != nil {
			log.Printf("⚠️ Meal lookup failed for join attribution: %v", err)
			break
		}
		s.analytics.EventJoined(sess.User.ID, event, meal)
		rec.JoinedEvent = event
		break
	}
	return rec, nil
}
