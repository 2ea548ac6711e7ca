package main

import (
	"context"
	"log"
	"os"
	"time"

	"corus-backend/internal/auth"
	"corus-backend/internal/config"
	"corus-backend/internal/db"
	"corus-backend/internal/fallback"
	"corus-backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	now := time.Now().In(cfg.Timezone)

	for _, item := range fallback.Menus() {
		item.ID = primitive.NewObjectID().Hex()
		item.CreatedAt = now
		if err := upsertBySlug(ctx, cols.Menus, item.Slug, item); err != nil {
			log.Fatalf("seed menu %s: %v", item.Slug, err)
		}
	}

	for _, item := range fallback.Solutions() {
		item.ID = primitive.NewObjectID().Hex()
		item.CreatedAt = now
		if err := upsertBySlug(ctx, cols.Solutions, item.Slug, item); err != nil {
			log.Fatalf("seed solution %s: %v", item.Slug, err)
		}
	}

	for _, item := range fallback.Industries() {
		item.ID = primitive.NewObjectID().Hex()
		item.CreatedAt = now
		if err := upsertBySlug(ctx, cols.Industries, item.Slug, item); err != nil {
			log.Fatalf("seed industry %s: %v", item.Slug, err)
		}
	}

	for _, item := range fallback.Blogs() {
		item.ID = primitive.NewObjectID().Hex()
		item.Status = models.BlogStatusPublished
		item.CreatedAt = now
		if item.PublishedAt.IsZero() {
			item.PublishedAt = now
		}
		if err := upsertBySlug(ctx, cols.Blogs, item.Slug, item); err != nil {
			log.Fatalf("seed blog %s: %v", item.Slug, err)
		}
	}

	for _, item := range fallback.CaseStudies() {
		item.ID = primitive.NewObjectID().Hex()
		item.Status = models.BlogStatusPublished
		item.CreatedAt = now
		if err := upsertBySlug(ctx, cols.CaseStudies, item.Slug, item); err != nil {
			log.Fatalf("seed case study %s: %v", item.Slug, err)
		}
	}

	if err := seedStats(ctx, cols, now); err != nil {
		log.Fatalf("seed stats: %v", err)
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = cfg.AdminPassword
	}
	if password == "" {
		log.Println("seed admin: ADMIN_PASSWORD missing, skipping")
	} else if err := seedAdminUser(ctx, cols, cfg.AdminUser, password, cfg.Timezone); err != nil {
		log.Fatalf("seed admin error for %s: %v", cfg.AdminUser, err)
	}

	log.Println("seed completed")
}

// upsertBySlug inserts the document only when the slug is absent, so
// re-running the seed never clobbers edits made through the back office.
func upsertBySlug(ctx context.Context, col *mongo.Collection, slug string, doc interface{}) error {
	filter := bson.M{"slug": slug}
	update := bson.M{"$setOnInsert": doc}
	_, err := col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func seedStats(ctx context.Context, cols *db.Collections, now time.Time) error {
	data := fallback.Stats()
	data.ID = "site-stats"
	data.LastUpdated = now
	data.CreatedAt = now
	filter := bson.M{"_id": data.ID}
	update := bson.M{"$setOnInsert": data}
	_, err := cols.Stats.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func seedAdminUser(ctx context.Context, cols *db.Collections, username, password string, loc *time.Location) error {
	if username == "" || password == "" {
		return nil
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	now := time.Now().In(loc)
	filter := bson.M{"username": username}
	update := bson.M{
		"$set": bson.M{
			"passwordHash": hash,
			"role":         models.UserRoleAdmin,
			"updatedAt":    now,
		},
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"username":  username,
			"createdAt": now,
		},
	}
	_, err = cols.Users.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
