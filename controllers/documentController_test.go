package controllers

import (
	"testing"
	"time"

	"zaad-backend/ledger"
)

func TestExpiryCutoff(t *testing.T) {
	window := 30 * 24 * time.Hour
	// Late in the day: the cutoff must still come from the start of today.
	now := time.Date(2024, 6, 1, 18, 45, 0, 0, time.UTC)

	cutoff := expiryCutoff(now, window)
	want := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if !cutoff.Equal(want) {
		t.Fatalf("expiryCutoff = %v, want %v", cutoff, want)
	}
}

func TestExpiryCutoffAgreesWithClassifier(t *testing.T) {
	window := 30 * 24 * time.Hour
	now := time.Date(2024, 6, 1, 18, 45, 0, 0, time.UTC)
	cutoff := expiryCutoff(now, window)

	tests := []struct {
		name   string
		expiry time.Time
	}{
		{"last day of window", time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)},
		{"exactly at window boundary", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"just past boundary", time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)},
		{"already expired", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listed := tt.expiry.Before(cutoff) // the SQL filter: expiry_date < cutoff
			status := ledger.ClassifyDocument(tt.expiry, now, window)
			if listed && status == ledger.DocumentValid {
				t.Errorf("expiry %v listed as expiring but classified %s", tt.expiry, status)
			}
			if !listed && status != ledger.DocumentValid {
				t.Errorf("expiry %v not listed but classified %s", tt.expiry, status)
			}
		})
	}
}
