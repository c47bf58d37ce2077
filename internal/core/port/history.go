package port

import (
	"context"
	"time"
)

// LaunchHistory is the optional audit trail for launch attempts. It never
// models the remote object graph; records are write-once diagnostics.
// Implementations must tolerate being called with a short deadline since
// recording is best-effort and must not fail a launch.
type LaunchHistory interface {
	RecordLaunch(ctx context.Context, rec LaunchRecord) error
	ListRecent(ctx context.Context, limit int) ([]LaunchRecord, error)
}

// LaunchRecord is one launch attempt. Ids of steps that never ran are
// empty. FailedStep and Error are empty on success.
type LaunchRecord struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId,omitempty"`
	AdSetID    string    `json:"adSetId,omitempty"`
	CreativeID string    `json:"creativeId,omitempty"`
	AdID       string    `json:"adId,omitempty"`
	FailedStep string    `json:"failedStep,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
