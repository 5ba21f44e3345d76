package usecase

import (
	"context"

	"gomarket/internal/domain/entity"
	"gomarket/internal/domain/repository"
	"gomarket/pkg/errors"
)

type UserUseCase struct {
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
}

func NewUserUseCase(userRepo repository.UserRepository, favoriteRepo repository.FavoriteRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
	}
}

// Profile is the session-start payload: the user plus the current
// favorite set, which seeds the client's local view.
type Profile struct {
	User      *entity.User `json:"user"`
	Favorites []string     `json:"favorites"`
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	favorites, err := uc.favoriteRepo.GetSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:      user,
		Favorites: favorites,
	}, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID, username string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if username != "" {
		user.Username = username
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
