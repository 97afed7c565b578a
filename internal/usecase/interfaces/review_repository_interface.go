package interfaces

import (
	"context"
	"fmrental_prestige/internal/domain/entities"
)

// IReviewRepository abstracts DynamoDB persistence for Review.

type IReviewRepository interface {
	Create(ctx context.Context, r entities.Review) (entities.Review, error)
	List(ctx context.Context, limit int) ([]entities.Review, error)
}
