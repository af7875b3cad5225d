package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixitnow/database"
	"fixitnow/models"
	"fixitnow/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProviderRepo implements ProviderProfileRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderProfileRepository using MongoDB.
func NewMongoProviderRepo() ProviderProfileRepository {
	coll := database.Collection("provider_profiles")
	repo := &MongoProviderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoProviderRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new provider profile document.
func (r *MongoProviderRepo) Create(ctx context.Context, profile *models.ProviderProfile) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.Categories == nil {
		profile.Categories = []models.ServiceCategory{}
	}

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.ConflictError("provider profile for user %s already exists", profile.UserID)
		}
		return fmt.Errorf("failed to create provider profile: %w", err)
	}
	return nil
}

// GetByUserID retrieves the profile for the given provider.
func (r *MongoProviderRepo) GetByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var profile models.ProviderProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError("provider profile for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to fetch provider profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Update applies a partial update and returns the resulting profile.
func (r *MongoProviderRepo) Update(ctx context.Context, userID string, update models.ProviderProfileUpdate) (*models.ProviderProfile, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Categories != nil {
		set["categories"] = *update.Categories
	}
	if update.Bio != nil {
		set["bio"] = *update.Bio
	}
	if update.Skills != nil {
		set["skills"] = *update.Skills
	}
	if update.ServiceArea != nil {
		set["service_area"] = *update.ServiceArea
	}
	if update.HourlyRate != nil {
		set["hourly_rate"] = *update.HourlyRate
	}
	if update.Available != nil {
		set["available"] = *update.Available
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var profile models.ProviderProfile
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, bson.M{"$set": set}, opts).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError("provider profile for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to update provider profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// GetCategories returns the provider's declared category set.
func (r *MongoProviderRepo) GetCategories(ctx context.Context, userID string) ([]models.ServiceCategory, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"categories": 1})
	var profile models.ProviderProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError("provider profile for user %s not found", userID)
		}
		return nil, fmt.Errorf("failed to fetch categories for user %s: %w", userID, err)
	}
	return profile.Categories, nil
}
