package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/KarthicSuRa/mcm-alerts-aws/internal/core/domain"
	"github.com/KarthicSuRa/mcm-alerts-aws/internal/platform/logger"
)

type DeviceService struct {
	repo      domain.DeviceRepository
	txManager TxRunner
	log       *slog.Logger
}

func NewDeviceService(log *slog.Logger, repo domain.DeviceRepository, txManager TxRunner) *DeviceService {
	return &DeviceService{log: log, repo: repo, txManager: txManager}
}

// Register upserts the device: re-registering the same player id overwrites
// the previous row.
func (s *DeviceService) Register(ctx context.Context, userID, playerID string) (*domain.Device, error) {
	if playerID == "" {
		return nil, domain.ErrMissingPlayerID
	}
	device := &domain.Device{
		PlayerID:  playerID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.Upsert(txCtx, device)
	}); err != nil {
		s.log.ErrorContext(ctx, "devices - register - upsert failed", logger.Player(playerID), logger.Err(err))
		return nil, err
	}
	s.log.InfoContext(ctx, "devices - register - device stored", logger.Player(playerID))
	return device, nil
}

// Unregister deletes only when the caller owns the device; otherwise
// domain.ErrDeviceNotOwned comes back (maps to 403 at the edge).
func (s *DeviceService) Unregister(ctx context.Context, userID, playerID string) error {
	if playerID == "" {
		return domain.ErrMissingPlayerID
	}
	if err := s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteOwned(txCtx, playerID, userID)
	}); err != nil {
		s.log.ErrorContext(ctx, "devices - unregister failed", logger.Player(playerID), logger.Err(err))
		return err
	}
	s.log.InfoContext(ctx, "devices - unregister - device removed", logger.Player(playerID))
	return nil
}
