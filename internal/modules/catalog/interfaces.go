package catalog

import (
	"context"

	"jamtrips/internal/domain"
	"jamtrips/internal/modules/realtime"
)

// TourRepository defines the interface for tour storage operations
type TourRepository interface {
	ListPublished(ctx context.Context) ([]domain.Tour, error)
	GetPublishedByID(ctx context.Context, id string) (*domain.Tour, error)
	ListAll(ctx context.Context) ([]domain.Tour, error)
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	Create(ctx context.Context, tour *domain.Tour) error
	Update(ctx context.Context, tour *domain.Tour) error
	SetPublished(ctx context.Context, id string, value bool) error
	Delete(ctx context.Context, id string) error
}

// ChangeNotifier pushes tour change events to the public listing feed
type ChangeNotifier interface {
	Broadcast(event realtime.Event)
}
