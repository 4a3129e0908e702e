package reservationRepo

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

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository using MongoDB.
func NewMongoReservationRepo() ReservationRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("reservations")
	repo := &MongoReservationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReservationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "goalkeeper_id", Value: 1}, {Key: "date", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new reservation, assigning the next ID and forcing the
// Pending status.
func (r *MongoReservationRepo) Create(res *models.Reservation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var last models.Reservation
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	switch {
	case err == mongo.ErrNoDocuments:
		res.ID = 1
	case err != nil:
		return fmt.Errorf("failed to determine next reservation id: %w", err)
	default:
		res.ID = last.ID + 1
	}

	res.Status = models.StatusPending
	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetByID retrieves a reservation by its unique ID. Misses resolve to (nil, nil).
func (r *MongoReservationRepo) GetByID(id int) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch reservation with id %d: %w", id, err)
	}
	return &res, nil
}

// ListByUser retrieves a client's reservations, newest date first.
func (r *MongoReservationRepo) ListByUser(userID int) ([]models.Reservation, error) {
	return r.list(bson.M{"user_id": userID})
}

// ListByGoalkeeper retrieves a goalkeeper's received reservations, newest
// date first.
func (r *MongoReservationRepo) ListByGoalkeeper(goalkeeperID int) ([]models.Reservation, error) {
	return r.list(bson.M{"goalkeeper_id": goalkeeperID})
}

func (r *MongoReservationRepo) list(filter bson.M) ([]models.Reservation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Reservation
	for cursor.Next(ctx) {
		var res models.Reservation
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode reservation: %w", err)
		}
		out = append(out, res)
	}
	return out, nil
}

// UpdateStatus sets the status of a reservation and returns the updated
// record. Misses resolve to (nil, nil).
func (r *MongoReservationRepo) UpdateStatus(id int, status models.ReservationStatus) (*models.Reservation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Reservation
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update status of reservation %d: %w", id, err)
	}
	return &updated, nil
}
