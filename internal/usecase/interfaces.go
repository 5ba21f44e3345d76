package usecase

import "context"

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	TestConnection(ctx context.Context) error
}

// FavoriteNotifier pushes the new favorite set to a user's other live
// sessions after a mutation commits. The originating session is excluded;
// it already applied the change optimistically.
type FavoriteNotifier interface {
	NotifyFavorites(userID, originSession string, favorites []string)
}
