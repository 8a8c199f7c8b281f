package domain

import (
	"context"
	"time"
)

// Sport is a category of activity under which sessions are organized.
// swagger:model Sport
type Sport struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSport returns a new Sport. ID is set by the repository on create.
func NewSport(name string, createdAt time.Time) *Sport {
	return &Sport{
		Name:      name,
		CreatedAt: createdAt,
	}
}

// SportRepository defines storage for sports.
// Delete must fail with ErrConflict while any session references the sport,
// and the check must be enforced by the store, not by a prior read.
type SportRepository interface {
	Create(ctx context.Context, sport *Sport) error
	GetByID(ctx context.Context, id string) (*Sport, error)
	List(ctx context.Context) ([]*Sport, error)
	Delete(ctx context.Context, id string) error
}

// SportService manages the sport catalog.
type SportService interface {
	CreateSport(ctx context.Context, name string) (*Sport, error)
	GetSport(ctx context.Context, id string) (*Sport, error)
	ListSports(ctx context.Context) ([]*Sport, error)
	DeleteSport(ctx context.Context, id string) error
}
