package auth

import (
	"context"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

// ClientRepositoryInterface — only the methods the auth service uses
type ClientRepositoryInterface interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	UpdateDetails(ctx context.Context, id int64, name, surname string) error
}
