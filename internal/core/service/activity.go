package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maintenox/maintenance-system/internal/core/domain"
	"github.com/maintenox/maintenance-system/internal/core/ports"
)

// recordActivity appends an entry to the audit trail. Failures are logged and
// swallowed: the audit trail never fails the primary operation.
func recordActivity(ctx context.Context, repo ports.ActivityRepository, log zerolog.Logger, actor, action, entityType, entityID, detail string) {
	if repo == nil {
		return
	}
	entry := &domain.ActivityEntry{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		Timestamp:  time.Now().UTC(),
	}
	if err := repo.Insert(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", action).Str("entity_id", entityID).Msg("failed to record activity")
	}
}
