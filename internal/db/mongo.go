package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	Menus         *mongo.Collection
	Solutions     *mongo.Collection
	Industries    *mongo.Collection
	Blogs         *mongo.Collection
	CaseStudies   *mongo.Collection
	Projects      *mongo.Collection
	Clients       *mongo.Collection
	Team          *mongo.Collection
	Consultations *mongo.Collection
	Schedules     *mongo.Collection
	Subscribers   *mongo.Collection
	Consents      *mongo.Collection
	Stats         *mongo.Collection
	Activities    *mongo.Collection
	Users         *mongo.Collection
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	db := client.Database(dbName)

	cols := &Collections{
		Menus:         db.Collection("menus"),
		Solutions:     db.Collection("solutions"),
		Industries:    db.Collection("industries"),
		Blogs:         db.Collection("blogs"),
		CaseStudies:   db.Collection("case_studies"),
		Projects:      db.Collection("projects"),
		Clients:       db.Collection("clients"),
		Team:          db.Collection("team_members"),
		Consultations: db.Collection("consultations"),
		Schedules:     db.Collection("schedules"),
		Subscribers:   db.Collection("newsletter_subscribers"),
		Consents:      db.Collection("consent_records"),
		Stats:         db.Collection("stats"),
		Activities:    db.Collection("activities"),
		Users:         db.Collection("users"),
	}

	return client, cols, nil
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	slugUnique := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	for _, col := range []*mongo.Collection{cols.Menus, cols.Solutions, cols.Industries, cols.Blogs, cols.CaseStudies} {
		if _, err := col.Indexes().CreateMany(indexTimeout, slugUnique); err != nil {
			return err
		}
	}

	if _, err := cols.Subscribers.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}); err != nil {
		return err
	}

	if _, err := cols.Schedules.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "preferredDate", Value: 1}, {Key: "preferredTime", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}); err != nil {
		return err
	}

	if _, err := cols.Activities.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "isRead", Value: 1}},
		},
	}); err != nil {
		return err
	}

	if _, err := cols.Users.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}); err != nil {
		return err
	}

	return nil
}
