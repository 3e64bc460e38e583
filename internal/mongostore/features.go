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

type featureDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Image     content.Image      `bson:"image"`
	Label     string             `bson:"label"`
	CTA       string             `bson:"cta"`
	Brand     string             `bson:"brand"`
	Tone      string             `bson:"tone"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// FeatureRepo implements content.FeatureRepository.
type FeatureRepo struct {
	s *Store
}

func (r *FeatureRepo) List(ctx context.Context, limit int) ([]content.Feature, error) {
	if limit <= 0 {
		limit = content.DefaultFeatures
	}
	cur, err := r.s.col(colFeatures).Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("mongostore: list features: %w", err)
	}
	var docs []featureDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode features: %w", err)
	}
	out := make([]content.Feature, len(docs))
	for i, d := range docs {
		out[i] = content.Feature{
			ID:        d.ID.Hex(),
			Image:     d.Image,
			Label:     d.Label,
			CTA:       d.CTA,
			Brand:     d.Brand,
			Tone:      d.Tone,
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		}
	}
	return out, nil
}
