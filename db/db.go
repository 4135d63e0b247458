package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voyago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("not found")

// Store wraps the Mongo database and exposes the handful of queries the
// routes need. Handlers get a *Store injected instead of reaching for
// package-level collections.
type Store struct {
	client      *mongo.Client
	Users       *mongo.Collection
	Itineraries *mongo.Collection
}

func Connect(ctx context.Context, uri string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	database := client.Database("voyago")
	return &Store{
		client:      client,
		Users:       database.Collection("users"),
		Itineraries: database.Collection("itineraries"),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) FindUser(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := s.Users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) InsertUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.Users.InsertOne(ctx, user)
	return err
}

func (s *Store) InsertTrip(ctx context.Context, trip *models.Trip) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.Itineraries.InsertOne(ctx, trip)
	if err != nil {
		return "", err
	}
	id, _ := result.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

// ListTrips returns the id/title projection for one user's saved trips.
func (s *Store) ListTrips(ctx context.Context, username string) ([]models.TripSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"title": 1})
	cursor, err := s.Itineraries.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	summaries := []models.TripSummary{}
	for cursor.Next(ctx) {
		var doc struct {
			ID    primitive.ObjectID `bson:"_id"`
			Title string             `bson:"title"`
		}
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		summaries = append(summaries, models.TripSummary{ID: doc.ID.Hex(), Title: doc.Title})
	}
	return summaries, cursor.Err()
}

func (s *Store) GetTrip(ctx context.Context, id string) (*models.Trip, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var trip models.Trip
	err = s.Itineraries.FindOne(ctx, bson.M{"_id": objID}).Decode(&trip)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// UpdateTrip replaces the itinerary payload and chat history in place; the
// collaboration route is the only writer.
func (s *Store) UpdateTrip(ctx context.Context, id string, itinerary *models.Itinerary, chat []models.ChatMessage) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"itinerary":    itinerary,
		"chat_history": chat,
	}}
	result, err := s.Itineraries.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PastTrip is the slice of a saved trip the profile synthesizer reads.
type PastTrip struct {
	Title  string
	Themes []string
}

// PastTrips reads title + day themes for every trip a user has saved.
func (s *Store) PastTrips(ctx context.Context, username string) ([]PastTrip, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{
		"itinerary.trip_details.title": 1,
		"itinerary.days.theme":         1,
	})
	cursor, err := s.Itineraries.Find(ctx, bson.M{"username": username}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var past []PastTrip
	for cursor.Next(ctx) {
		var trip models.Trip
		if err := cursor.Decode(&trip); err != nil {
			continue
		}
		entry := PastTrip{Title: trip.Itinerary.TripDetails.Title}
		for _, day := range trip.Itinerary.Days {
			entry.Themes = append(entry.Themes, day.Theme)
		}
		past = append(past, entry)
	}
	return past, cursor.Err()
}
