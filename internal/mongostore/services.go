package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/starford/laguz/internal/content"
)

type serviceDoc struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Slug        string               `bson:"slug"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	Icon        *content.Image       `bson:"icon"`
	Subservices []content.Subservice `bson:"subservices"`
	Highlights  []string             `bson:"highlights"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

func (d serviceDoc) toEntity() content.Service {
	subs := d.Subservices
	if subs == nil {
		subs = []content.Subservice{}
	}
	hl := d.Highlights
	if hl == nil {
		hl = []string{}
	}
	return content.Service{
		ID:          d.ID.Hex(),
		Slug:        d.Slug,
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Subservices: subs,
		Highlights:  hl,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ServiceRepo implements content.ServiceRepository.
type ServiceRepo struct {
	s *Store
}

// ListAll returns every service ordered by name. The collection is small
// enough that no pagination is offered.
func (r *ServiceRepo) ListAll(ctx context.Context) ([]content.Service, error) {
	cur, err := r.s.col(colServices).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("mongostore: list services: %w", err)
	}
	var docs []serviceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode services: %w", err)
	}
	out := make([]content.Service, len(docs))
	for i, d := range docs {
		out[i] = d.toEntity()
	}
	return out, nil
}

func (r *ServiceRepo) GetBySlug(ctx context.Context, slug string) (*content.Service, error) {
	var d serviceDoc
	err := r.s.col(colServices).FindOne(ctx, bson.M{"slug": slug}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongostore: get service %q: %w", slug, err)
	}
	svc := d.toEntity()
	return &svc, nil
}
