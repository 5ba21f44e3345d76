package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gomarket/internal/domain/entity"
	"gomarket/internal/domain/repository"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

func favoriteDocID(userID, productID string) string {
	return fmt.Sprintf("%s_%s", userID, productID)
}

// Add writes the membership document keyed by (user, product). Set is a
// full overwrite, so repeating the call or racing another session leaves
// exactly one document: last commit wins, no duplicates.
func (r *firestoreFavoriteRepository) Add(ctx context.Context, userID, productID string) error {
	item := entity.FavoriteItem{
		ID:        favoriteDocID(userID, productID),
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	_, err := r.client.Collection("favorites").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return mapStoreError("Favorite", err)
	}

	return nil
}

// Remove deletes the membership document. Deleting an absent document
// succeeds, which gives the idempotent remove contract for free.
func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, productID string) error {
	_, err := r.client.Collection("favorites").Doc(favoriteDocID(userID, productID)).Delete(ctx)
	if err != nil && !isNotFound(err) {
		return mapStoreError("Favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Contains(ctx context.Context, userID, productID string) (bool, error) {
	doc, err := r.client.Collection("favorites").Doc(favoriteDocID(userID, productID)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, mapStoreError("Favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) GetSet(ctx context.Context, userID string) ([]string, error) {
	query := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	ids := make([]string, 0)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError("Favorite", err)
		}
		var item entity.FavoriteItem
		if err := doc.DataTo(&item); err != nil {
			continue
		}
		ids = append(ids, item.ProductID)
	}

	return ids, nil
}

func (r *firestoreFavoriteRepository) Count(ctx context.Context, userID string) (int64, error) {
	ids, err := r.GetSet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}
