package middlewares

import (
	"testing"

	"zaad-backend/models"
)

func TestDecideReplay(t *testing.T) {
	const hash = "abc123"

	tests := []struct {
		name     string
		existing models.IdempotencyKey
		reqHash  string
		want     replayAction
	}{
		{
			name:     "pending key runs the handler",
			existing: models.IdempotencyKey{RequestHash: hash},
			reqHash:  hash,
			want:     replayRun,
		},
		{
			name: "completed key replays the stored response",
			existing: models.IdempotencyKey{
				RequestHash:    hash,
				ResponseStatus: 201,
				ResponseBody:   []byte(`{"message":"success"}`),
			},
			reqHash: hash,
			want:    replayStored,
		},
		{
			name: "key reuse with a different request conflicts",
			existing: models.IdempotencyKey{
				RequestHash:    hash,
				ResponseStatus: 201,
				ResponseBody:   []byte(`{"message":"success"}`),
			},
			reqHash: "other",
			want:    replayConflict,
		},
		{
			name: "completed status without a stored body runs the handler",
			existing: models.IdempotencyKey{
				RequestHash:    hash,
				ResponseStatus: 200,
			},
			reqHash: hash,
			want:    replayRun,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decideReplay(tt.existing, tt.reqHash); got != tt.want {
				t.Errorf("decideReplay() = %v, want %v", got, tt.want)
			}
		})
	}
}
