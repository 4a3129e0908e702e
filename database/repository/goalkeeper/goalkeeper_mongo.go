package gkRepo

import (
	"context"
	"fmt"
	"time"

	"goleironow/config"
	"goleironow/database"
	"goleironow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoGoalkeeperRepo implements GoalkeeperRepository using MongoDB.
type MongoGoalkeeperRepo struct {
	coll *mongo.Collection
}

// NewMongoGoalkeeperRepo creates a new instance of GoalkeeperRepository using MongoDB.
func NewMongoGoalkeeperRepo() GoalkeeperRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("goalkeepers")
	repo := &MongoGoalkeeperRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGoalkeeperRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "region", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a goalkeeper by its unique ID. Misses resolve to (nil, nil).
func (r *MongoGoalkeeperRepo) GetByID(id int) (*models.Goalkeeper, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var gk models.Goalkeeper
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&gk); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch goalkeeper with id %d: %w", id, err)
	}
	return &gk, nil
}

// GetAll retrieves all goalkeeper profiles.
func (r *MongoGoalkeeperRepo) GetAll() ([]models.Goalkeeper, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve goalkeepers: %w", err)
	}
	defer cursor.Close(ctx)

	var gks []models.Goalkeeper
	for cursor.Next(ctx) {
		var g models.Goalkeeper
		if err := cursor.Decode(&g); err != nil {
			return nil, fmt.Errorf("failed to decode goalkeeper: %w", err)
		}
		gks = append(gks, g)
	}
	return gks, nil
}

// Create inserts a new goalkeeper profile, assigning the next ID.
func (r *MongoGoalkeeperRepo) Create(gk *models.Goalkeeper) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var last models.Goalkeeper
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	switch {
	case err == mongo.ErrNoDocuments:
		gk.ID = 1
	case err != nil:
		return fmt.Errorf("failed to determine next goalkeeper id: %w", err)
	default:
		gk.ID = last.ID + 1
	}

	if _, err := r.coll.InsertOne(ctx, gk); err != nil {
		return fmt.Errorf("failed to create goalkeeper: %w", err)
	}
	return nil
}

// Update modifies an existing goalkeeper document.
func (r *MongoGoalkeeperRepo) Update(gk *models.Goalkeeper) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": gk.ID}
	update := bson.M{"$set": gk}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update goalkeeper with id %d: %w", gk.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrGoalkeeperNotFound
	}
	return nil
}
