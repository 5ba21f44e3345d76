package usecase

import (
	"context"

	"gomarket/internal/domain/repository"
	"gomarket/pkg/errors"
	"gomarket/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
	notifier     FavoriteNotifier
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	productRepo repository.ProductRepository,
	notifier FavoriteNotifier,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
		notifier:     notifier,
	}
}

// AddFavorite puts the product into the caller's set and returns the
// resulting set. Re-adding a present product is a success with the set
// unchanged.
func (uc *FavoriteUseCase) AddFavorite(ctx context.Context, userID, productID, originSession string) ([]string, error) {
	if productID == "" {
		return nil, errors.BadRequest("Product ID is required", nil)
	}

	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	if err := uc.favoriteRepo.Add(ctx, userID, productID); err != nil {
		return nil, err
	}

	return uc.finish(ctx, userID, originSession)
}

// RemoveFavorite takes the product out of the caller's set. Removing an
// absent product succeeds; the product itself does not need to exist
// anymore.
func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, userID, productID, originSession string) ([]string, error) {
	if productID == "" {
		return nil, errors.BadRequest("Product ID is required", nil)
	}

	if err := uc.favoriteRepo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}

	return uc.finish(ctx, userID, originSession)
}

func (uc *FavoriteUseCase) finish(ctx context.Context, userID, originSession string) ([]string, error) {
	favorites, err := uc.favoriteRepo.GetSet(ctx, userID)
	if err != nil {
		// The mutation committed; failing the whole call here would make
		// the client revert a change that actually happened.
		logger.Warn("Favorite set read-back failed for user %s: %v", userID, err)
		return []string{}, nil
	}

	if uc.notifier != nil {
		uc.notifier.NotifyFavorites(userID, originSession, favorites)
	}

	return favorites, nil
}

func (uc *FavoriteUseCase) GetFavorites(ctx context.Context, userID string) ([]string, error) {
	return uc.favoriteRepo.GetSet(ctx, userID)
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, productID string) (bool, error) {
	if productID == "" {
		return false, errors.BadRequest("Product ID is required", nil)
	}
	return uc.favoriteRepo.Contains(ctx, userID, productID)
}

func (uc *FavoriteUseCase) GetFavoriteCount(ctx context.Context, userID string) (int64, error) {
	return uc.favoriteRepo.Count(ctx, userID)
}
