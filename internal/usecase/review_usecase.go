package usecase

import (
	"context"
	"errors"
	"fmrental_prestige/internal/domain/entities"
	"fmrental_prestige/internal/infrastructure/observability"
	"fmrental_prestige/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultReviewListLimit = 12

var (
	ErrInvalidRating      = errors.New("invalid rating")
	ErrInvalidReviewInput = errors.New("invalid review input")
)

type CreateReviewInput struct {
	Nome     string
	Rating   int
	Commento string
	Fonte    *string
}

type IReviewUseCase interface {
	Create(ctx context.Context, in CreateReviewInput) (entities.Review, error)
	List(ctx context.Context, limit int) ([]entities.Review, error)
}

type ReviewUseCase struct {
	repo interfaces.IReviewRepository
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{repo: repo}
}

func (u *ReviewUseCase) Create(ctx context.Context, in CreateReviewInput) (entities.Review, error) {
	if strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.Commento) == "" {
		return entities.Review{}, ErrInvalidReviewInput
	}
	if !entities.ValidRating(in.Rating) {
		return entities.Review{}, ErrInvalidRating
	}
	if u.repo == nil {
		return entities.Review{}, ErrStoreUnavailable
	}

	rv := entities.Review{
		ID:        entities.NewDocumentID(),
		Nome:      in.Nome,
		Rating:    in.Rating,
		Commento:  in.Commento,
		Fonte:     in.Fonte,
		CreatedAt: time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, rv)
	if err != nil {
		log.Error().Err(err).Int("rating", rv.Rating).Msg("review create failed")
		return entities.Review{}, storeError("create review", err)
	}
	observability.ObserveReview(created.Rating)
	log.Info().Str("id", created.ID.String()).Int("rating", created.Rating).Msg("review created")
	return created, nil
}

func (u *ReviewUseCase) List(ctx context.Context, limit int) ([]entities.Review, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if u.repo == nil {
		return nil, ErrStoreUnavailable
	}

	items, err := u.repo.List(ctx, limit)
	if err != nil {
		return nil, storeError("list reviews", err)
	}
	return items, nil
}
