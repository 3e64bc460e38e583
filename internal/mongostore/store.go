// Package mongostore implements the content repository ports on MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, one per content type.
const (
	colNavigation      = "navigation"
	colFooter          = "footer"
	colAnnouncements   = "announcements"
	colEvents          = "events"
	colAttachments     = "attachments"
	colServices        = "services"
	colAgreements      = "agreements"
	colFeatures        = "features"
	colRecommendations = "recommendations"
	colPages           = "pages"
)

// Store wraps the MongoDB database handle and hands out per-entity
// repositories.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongostore: ping: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongostore: disconnect: %w", err)
	}
	return nil
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Repositories per entity.

func (s *Store) Navigation() *NavigationRepo     { return &NavigationRepo{s} }
func (s *Store) Footer() *FooterRepo             { return &FooterRepo{s} }
func (s *Store) Announcements() *AnnouncementRepo { return &AnnouncementRepo{s} }
func (s *Store) Events() *EventRepo               { return &EventRepo{s} }
func (s *Store) Attachments() *AttachmentRepo     { return &AttachmentRepo{s} }
func (s *Store) Services() *ServiceRepo           { return &ServiceRepo{s} }
func (s *Store) Agreements() *AgreementRepo       { return &AgreementRepo{s} }
func (s *Store) Features() *FeatureRepo           { return &FeatureRepo{s} }
func (s *Store) Recommendations() *RecommendationRepo {
	return &RecommendationRepo{s}
}
func (s *Store) Pages() *PageRepo { return &PageRepo{s} }
