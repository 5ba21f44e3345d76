package entity

import (
	"time"
)

// FavoriteItem is one membership record in a user's favorite set. The
// document ID is derived from (userID, productID), so a product appears
// at most once per user.
type FavoriteItem struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ProductID string    `json:"product_id" firestore:"productId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
