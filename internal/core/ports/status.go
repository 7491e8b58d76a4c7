package ports

import (
	"context"

	"tuberev/internal/core/domain"
)

type StatusRepositoryPort interface {
	Insert(ctx context.Context, check domain.StatusCheck) error
	List(ctx context.Context, limit int64) ([]domain.StatusCheck, error)
}
