package auth

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type jwtService interface {
	GenerateToken(userID int64, role string, departmentID *int64) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	clients ClientRepositoryInterface
	jwt     jwtService
}

type LoginResult struct {
	Client      *domain.Client
	AccessToken string
}

func NewService(clients ClientRepositoryInterface, jwt jwtService) *Service {
	return &Service{clients: clients, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Client, error) {
	if err := checkPasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	client := &domain.Client{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         req.Name,
		Surname:      req.Surname,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	client.PasswordHash = ""
	return client, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	client, err := s.clients.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !client.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(client.ID, string(client.Role), client.DepartmentID)
	if err != nil {
		return nil, err
	}

	client.PasswordHash = ""
	return &LoginResult{Client: client, AccessToken: token}, nil
}

func (s *Service) GetCurrentClient(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	client.PasswordHash = ""
	return client, nil
}

func (s *Service) UpdateProfile(ctx context.Context, clientID int64, req UpdateProfileRequest) (*domain.Client, error) {
	if err := s.clients.UpdateDetails(ctx, clientID, req.Name, req.Surname); err != nil {
		return nil, err
	}
	return s.GetCurrentClient(ctx, clientID)
}

// checkPasswordPolicy requires at least 8 characters with an upper-case
// letter, a lower-case letter, a digit and a special character.
func checkPasswordPolicy(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return ErrWeakPassword
	}
	return nil
}
