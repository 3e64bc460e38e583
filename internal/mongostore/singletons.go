package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/starford/laguz/internal/content"
)

// Singleton documents are addressed by a fixed key field instead of relying
// on the collection's natural order, so exactly one canonical record is
// consulted per read.
const (
	keyNavigation = "navigation"
	keyFooter     = "footer"
)

type navigationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Key       string             `bson:"key"`
	Items     []content.NavItem  `bson:"items"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type footerDoc struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty"`
	Key       string                 `bson:"key"`
	Columns   []content.FooterColumn `bson:"columns"`
	Socials   []content.SocialLink   `bson:"socials"`
	Note      string                 `bson:"note"`
	CreatedAt time.Time              `bson:"createdAt"`
	UpdatedAt time.Time              `bson:"updatedAt"`
}

// NavigationRepo implements content.NavigationRepository.
type NavigationRepo struct {
	s *Store
}

// Get returns the canonical navigation document, or a built-in empty default
// when none exists. Missing configuration never blocks page rendering.
func (r *NavigationRepo) Get(ctx context.Context) (*content.Navigation, error) {
	var d navigationDoc
	err := r.s.col(colNavigation).FindOne(ctx, bson.M{"key": keyNavigation}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		now := time.Now()
		return &content.Navigation{ID: "na", Items: []content.NavItem{}, CreatedAt: now, UpdatedAt: now}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongostore: get navigation: %w", err)
	}
	items := d.Items
	if items == nil {
		items = []content.NavItem{}
	}
	return &content.Navigation{
		ID:        d.ID.Hex(),
		Items:     items,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// FooterRepo implements content.FooterRepository.
type FooterRepo struct {
	s *Store
}

// Get returns the canonical footer document, or a built-in empty default when
// none exists.
func (r *FooterRepo) Get(ctx context.Context) (*content.Footer, error) {
	var d footerDoc
	err := r.s.col(colFooter).FindOne(ctx, bson.M{"key": keyFooter}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		now := time.Now()
		return &content.Footer{ID: "na", Columns: []content.FooterColumn{}, Note: "", CreatedAt: now, UpdatedAt: now}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongostore: get footer: %w", err)
	}
	cols := d.Columns
	if cols == nil {
		cols = []content.FooterColumn{}
	}
	socials := d.Socials
	if socials == nil {
		socials = []content.SocialLink{}
	}
	return &content.Footer{
		ID:        d.ID.Hex(),
		Columns:   cols,
		Socials:   socials,
		Note:      d.Note,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
