package usecases

import (
	"context"
	"fmt"

	"tuberev/internal/core/domain"
	"tuberev/internal/core/ports"
)

const statusListLimit = 1000

type StatusUseCase interface {
	RecordCheck(ctx context.Context, clientName string) (domain.StatusCheck, error)
	ListChecks(ctx context.Context) ([]domain.StatusCheck, error)
}

type statusUseCase struct {
	repo ports.StatusRepositoryPort
	log  ports.LoggerPort
}

func NewStatusUseCase(repo ports.StatusRepositoryPort, logger ports.LoggerPort) StatusUseCase {
	return &statusUseCase{repo: repo, log: logger}
}

func (uc *statusUseCase) RecordCheck(ctx context.Context, clientName string) (domain.StatusCheck, error) {
	if clientName == "" {
		return domain.StatusCheck{}, fmt.Errorf("client name cannot be empty")
	}

	check := domain.NewStatusCheck(clientName)
	if err := uc.repo.Insert(ctx, check); err != nil {
		uc.log.Error("failed to insert status check", err)
		return domain.StatusCheck{}, fmt.Errorf("error while recording status check: %w", err)
	}

	return check, nil
}

func (uc *statusUseCase) ListChecks(ctx context.Context) ([]domain.StatusCheck, error) {
	checks, err := uc.repo.List(ctx, statusListLimit)
	if err != nil {
		uc.log.Error("failed to list status checks", err)
		return nil, fmt.Errorf("error while listing status checks: %w", err)
	}

	return checks, nil
}
