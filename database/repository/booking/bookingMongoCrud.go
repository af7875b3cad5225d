package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixitnow/models"
	"fixitnow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document. The store forces the initial
// state: pending, no provider, creation and modification stamps equal.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (string, error) {
	if err := validateNewBooking(booking); err != nil {
		return "", err
	}

	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	booking.ID = uuid.New().String()
	booking.Status = models.BookingPending
	booking.ProviderID = ""
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}
	return booking.ID, nil
}

func validateNewBooking(booking *models.Booking) error {
	if booking.CustomerID == "" {
		return utils.ValidationError("customerId is required")
	}
	if !models.ValidServiceCategory(booking.Category) {
		return utils.ValidationError("unknown service category %q", booking.Category)
	}
	if booking.RequestedAt.IsZero() {
		return utils.ValidationError("requestedAt is required")
	}
	if booking.Location == "" {
		return utils.ValidationError("location is required")
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NotFoundError("booking %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

// DecideStatus performs the conditional status transition. The filter
// carries the expected status, so the read-check-write happens inside a
// single FindOneAndUpdate and concurrent deciders cannot both match.
func (r *MongoBookingRepo) DecideStatus(ctx context.Context, id string, expected, next models.BookingStatus, providerID string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": expected}
	update := bson.M{"$set": bson.M{
		"status":      next,
		"provider_id": providerID,
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}

	// The filter missed: either the booking does not exist, or its
	// status already moved. Distinguish the two for the caller.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, utils.ConflictError("booking %s is no longer %s", id, expected)
}
