package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fixitnow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(sort)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}

// ListByCustomer returns the customer's bookings, newest first.
func (r *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.find(ctx,
		bson.M{"customer_id": customerID},
		bson.D{{Key: "created_at", Value: -1}},
	)
}

// ListOpenByCategory returns pending bookings in the category, oldest
// first.
func (r *MongoBookingRepo) ListOpenByCategory(ctx context.Context, category models.ServiceCategory) ([]models.Booking, error) {
	return r.find(ctx,
		bson.M{"status": models.BookingPending, "category": category},
		bson.D{{Key: "created_at", Value: 1}},
	)
}

// ListByProvider returns bookings assigned to the provider, any status.
func (r *MongoBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.find(ctx,
		bson.M{"provider_id": providerID},
		bson.D{{Key: "created_at", Value: -1}},
	)
}

// ListAll returns every booking, newest first.
func (r *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *MongoBookingRepo) countBy(ctx context.Context, field string) (map[string]int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate bookings by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode aggregation row: %w", err)
		}
		counts[row.ID] = row.Count
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate aggregation: %w", err)
	}
	return counts, nil
}

// CountByStatus returns the number of bookings per status.
func (r *MongoBookingRepo) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	raw, err := r.countBy(ctx, "status")
	if err != nil {
		return nil, err
	}
	counts := make(map[models.BookingStatus]int64, len(raw))
	for k, v := range raw {
		counts[models.BookingStatus(k)] = v
	}
	return counts, nil
}

// CountByCategory returns the number of bookings per category.
func (r *MongoBookingRepo) CountByCategory(ctx context.Context) (map[models.ServiceCategory]int64, error) {
	raw, err := r.countBy(ctx, "category")
	if err != nil {
		return nil, err
	}
	counts := make(map[models.ServiceCategory]int64, len(raw))
	for k, v := range raw {
		counts[models.ServiceCategory(k)] = v
	}
	return counts, nil
}
