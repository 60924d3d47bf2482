package workers

import (
	"context"
	"time"

	"chirpynosh_backend/internal/config"
	"chirpynosh_backend/internal/logger"
	"chirpynosh_backend/internal/services"
)

// ExpirationWorker periodically sweeps tracked items and records
// expiring_soon notifications for those entering the horizon. The same
// sweep prunes read notifications past the retention window.
type ExpirationWorker struct {
	expirationService   services.ExpirationService
	notificationService services.NotificationService
	interval            time.Duration
	horizonDays         int
	retentionDays       int
}

func NewExpirationWorker(expirationService services.ExpirationService, notificationService services.NotificationService, cfg *config.Config) *ExpirationWorker {
	return &ExpirationWorker{
		expirationService:   expirationService,
		notificationService: notificationService,
		interval:            time.Duration(cfg.Worker.ExpirationCheckHours) * time.Hour,
		horizonDays:         cfg.Worker.ExpiringSoonDays,
		retentionDays:       cfg.Worker.NotificationRetentionDays,
	}
}

func (w *ExpirationWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *ExpirationWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// First sweep immediately so a restart does not delay announcements by
	// a full interval.
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiration worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpirationWorker) sweep(ctx context.Context) {
	count, err := w.expirationService.CheckExpiringSoon(ctx, w.horizonDays)
	logger.WorkerLog("expiration", "check_expiring_soon", err)
	if err == nil && count > 0 {
		logger.Info("Announced expiring items", "count", count)
	}

	pruned, err := w.notificationService.DeleteOld(ctx, w.retentionDays)
	logger.WorkerLog("expiration", "prune_notifications", err)
	if err == nil && pruned > 0 {
		logger.Info("Pruned old notifications", "count", pruned)
	}
}
