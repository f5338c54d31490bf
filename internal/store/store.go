package store

import "context"

// DeliveryLedger records which report dates have already been posted so a
// restarted or replicated scheduler does not post the same day twice.
type DeliveryLedger interface {
	// Claim marks date as delivered. It returns false when date was already claimed.
	Claim(ctx context.Context, date string) (bool, error)
	// Release undoes a claim after a failed delivery.
	Release(ctx context.Context, date string) error
	// Delivered reports whether date has been claimed.
	Delivered(ctx context.Context, date string) (bool, error)
}
