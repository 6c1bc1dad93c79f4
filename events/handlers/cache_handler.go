package handlers

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"barkmap/events/types"
	"barkmap/interfaces"
)

// CacheHandler invalidates cached tiles in response to business record
// lifecycle events.
type CacheHandler struct {
	cacheService interfaces.CacheService
}

// NewCacheHandler creates a new cache handler.
func NewCacheHandler(cacheService interfaces.CacheService) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
	}
}

// HandleRecordEvent invalidates the MVT cache whenever a business record is
// created or deleted, since either changes what any covering tile compiles
// to.
func (h *CacheHandler) HandleRecordEvent(ctx context.Context, event interfaces.Event) error {
	var recordID string

	switch e := event.(type) {
	case *types.RecordCreated:
		recordID = e.Record.ID
	case *types.RecordDeleted:
		recordID = e.RecordID
	default:
		return fmt.Errorf("unsupported event type for record cache invalidation: %T", event)
	}

	log.Info().Str("recordId", recordID).Msg("invalidating MVT cache")

	if err := h.cacheService.InvalidateMVTCache(ctx); err != nil {
		return fmt.Errorf("failed to invalidate MVT cache: %w", err)
	}

	return nil
}
