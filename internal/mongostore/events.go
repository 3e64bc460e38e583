package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starford/laguz/internal/content"
)

type eventDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Image       *content.Image     `bson:"image"`
	Location    string             `bson:"location"`
	StartsAt    time.Time          `bson:"startsAt"`
	EndsAt      *time.Time         `bson:"endsAt"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d eventDoc) toEntity() content.Event {
	return content.Event{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Location:    d.Location,
		StartsAt:    d.StartsAt,
		EndsAt:      d.EndsAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func eventUpcomingFilter(now time.Time) bson.M {
	return bson.M{"startsAt": bson.M{"$gte": now}}
}

var (
	// Soonest first for the upcoming view.
	eventUpcomingSort = bson.D{{Key: "startsAt", Value: 1}}
	eventLatestSort   = bson.D{
		{Key: "startsAt", Value: -1},
		{Key: "createdAt", Value: -1},
	}
)

// EventRepo implements content.EventRepository.
type EventRepo struct {
	s *Store
}

func (r *EventRepo) ListUpcoming(ctx context.Context, limit int) ([]content.Event, error) {
	if limit <= 0 {
		limit = content.DefaultEventsUpcoming
	}
	return r.list(ctx, eventUpcomingFilter(time.Now()), eventUpcomingSort, int64(limit))
}

func (r *EventRepo) ListLatest(ctx context.Context, limit int) ([]content.Event, error) {
	if limit <= 0 {
		limit = content.DefaultEventsLatest
	}
	return r.list(ctx, bson.M{}, eventLatestSort, int64(limit))
}

func (r *EventRepo) list(ctx context.Context, filter bson.M, sort bson.D, limit int64) ([]content.Event, error) {
	cur, err := r.s.col(colEvents).Find(ctx, filter,
		options.Find().SetSort(sort).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("mongostore: list events: %w", err)
	}
	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode events: %w", err)
	}
	out := make([]content.Event, len(docs))
	for i, d := range docs {
		out[i] = d.toEntity()
	}
	return out, nil
}
