package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"gomarket/internal/domain/entity"
	"gomarket/pkg/config"
)

// Seeds the products collection with a demo catalog. Existing documents
// are left in place; IDs are fresh on every run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}
		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer client.Close()

	samples := []entity.Product{
		{Title: "Wireless Headphones", Price: 79.99, Description: "Premium noise-cancelling wireless headphones with 30-hour battery life", Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop"},
		{Title: "Smartwatch Pro", Price: 299.99, Description: "Advanced smartwatch with fitness tracking and health monitoring", Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop"},
		{Title: "USB-C Cable", Price: 12.99, Description: "Durable USB-C charging and data cable, 6 feet long", Image: "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=400&h=400&fit=crop"},
		{Title: "Portable Speaker", Price: 49.99, Description: "Waterproof Bluetooth speaker with powerful bass and 12-hour battery", Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=400&fit=crop"},
		{Title: "Phone Screen Protector", Price: 9.99, Description: "Tempered glass screen protector for smartphones, anti-scratch", Image: "https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?w=400&h=400&fit=crop"},
		{Title: "Laptop Stand", Price: 34.99, Description: "Adjustable aluminum laptop stand for better ergonomics", Image: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=400&fit=crop"},
		{Title: "Wireless Mouse", Price: 24.99, Description: "Ergonomic wireless mouse with precision tracking and 18-month battery", Image: "https://images.unsplash.com/photo-1527814050087-3793815479db?w=400&h=400&fit=crop"},
		{Title: "Mechanical Keyboard", Price: 89.99, Description: "RGB mechanical keyboard with tactile switches", Image: "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?w=400&h=400&fit=crop"},
		{Title: "Phone Charger", Price: 19.99, Description: "Fast-charging wall adapter with dual USB ports", Image: "https://images.unsplash.com/photo-1583863788434-e58a36330cf0?w=400&h=400&fit=crop"},
		{Title: "Tablet Case", Price: 29.99, Description: "Slim protective case with stand for 10-inch tablets", Image: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400&h=400&fit=crop"},
	}

	base := time.Now()
	for i, product := range samples {
		product.ID = uuid.NewString()
		// Staggered creation times keep the listing order deterministic.
		product.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
		product.UpdatedAt = product.CreatedAt

		if _, err := client.Collection("products").Doc(product.ID).Set(ctx, product); err != nil {
			log.Fatalf("Failed to seed product %q: %v", product.Title, err)
		}
		log.Printf("Seeded product %q (%s)", product.Title, product.ID)
	}

	log.Printf("Seeded %d products", len(samples))
}
