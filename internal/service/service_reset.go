package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-travel-board/internal/logger"
	"github.com/MKhiriev/go-travel-board/internal/store"
)

type resetService struct {
	purger  store.Purger
	service string
}

// NewResetService returns a ResetService that empties the table behind
// purger. service names the table owner in logs.
func NewResetService(purger store.Purger, service string) ResetService {
	return &resetService{purger: purger, service: service}
}

func (r *resetService) Reset(ctx context.Context) (int64, error) {
	deleted, err := r.purger.Purge(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s reset failed: %w", r.service, err)
	}

	logger.FromContext(ctx).Warn().
		Str("service", r.service).
		Int64("deleted", deleted).
		Msg("table reset")
	return deleted, nil
}
