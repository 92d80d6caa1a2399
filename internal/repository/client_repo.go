package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Name         string    `gorm:"column:name"`
	Surname      string    `gorm:"column:surname"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	IsActive     bool      `gorm:"column:is_active"`
	DepartmentID *int64    `gorm:"column:department_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) *domain.Client {
	return &domain.Client{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		Surname:      m.Surname,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		IsActive:     m.IsActive,
		DepartmentID: m.DepartmentID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toClientModel(c *domain.Client) clientModel {
	return clientModel{
		ID:           c.ID,
		Email:        strings.TrimSpace(strings.ToLower(c.Email)),
		Name:         c.Name,
		Surname:      c.Surname,
		PasswordHash: c.PasswordHash,
		Role:         string(c.Role),
		IsActive:     c.IsActive,
		DepartmentID: c.DepartmentID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := toClientModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainClient(m)
	return nil
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var ms []clientModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Client, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainClient(m))
	}
	return out, nil
}

func (r *ClientRepository) UpdateDetails(ctx context.Context, id int64, name, surname string) error {
	return r.db.WithContext(ctx).
		Model(&clientModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       name,
			"surname":    surname,
			"updated_at": time.Now(),
		}).Error
}
