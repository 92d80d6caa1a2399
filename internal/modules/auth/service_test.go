package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/kokolodziejska/zagrane/internal/domain"
)

type mockClientRepo struct {
	mock.Mock
}

func (m *mockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockClientRepo) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientRepo) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *mockClientRepo) UpdateDetails(ctx context.Context, id int64, name, surname string) error {
	args := m.Called(ctx, id, name, surname)
	return args.Error(0)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID int64, role string, departmentID *int64) (string, error) {
	args := m.Called(userID, role, departmentID)
	return args.String(0), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockClientRepo)
	jwt := new(mockJWT)
	svc := NewService(repo, jwt)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.Email == "anna@example.com" &&
			c.Role == domain.RoleUser &&
			c.IsActive &&
			c.PasswordHash != "" &&
			c.PasswordHash != "Str0ng!pass"
	})).Return(nil)

	client, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Anna@Example.com",
		Name:     "Anna",
		Surname:  "Nowak",
		Password: "Str0ng!pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "anna@example.com", client.Email)
	assert.Empty(t, client.PasswordHash)
	repo.AssertExpectations(t)
}

func TestRegister_WeakPassword(t *testing.T) {
	repo := new(mockClientRepo)
	svc := NewService(repo, new(mockJWT))

	for _, password := range []string{
		"alllowercase1!",
		"ALLUPPERCASE1!",
		"NoDigits!!",
		"NoSpecial11",
		"Sh0rt!",
	} {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Email:    "a@b.com",
			Name:     "Anna",
			Surname:  "Nowak",
			Password: password,
		})
		assert.ErrorIs(t, err, ErrWeakPassword, "password %q should be rejected", password)
	}

	repo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockClientRepo)
	jwt := new(mockJWT)
	svc := NewService(repo, jwt)

	hash, _ := bcrypt.GenerateFromPassword([]byte("Str0ng!pass"), bcrypt.DefaultCost)
	repo.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.Client{
		ID:           7,
		Email:        "anna@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
	}, nil)
	jwt.On("GenerateToken", int64(7), "user", (*int64)(nil)).Return("token-abc", nil)

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "anna@example.com",
		Password: "Str0ng!pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", result.AccessToken)
	assert.Empty(t, result.Client.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockClientRepo)
	svc := NewService(repo, new(mockJWT))

	hash, _ := bcrypt.GenerateFromPassword([]byte("Str0ng!pass"), bcrypt.DefaultCost)
	repo.On("GetByEmail", mock.Anything, "anna@example.com").Return(&domain.Client{
		Email:        "anna@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(mockClientRepo)
	svc := NewService(repo, new(mockJWT))

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := new(mockClientRepo)
	svc := NewService(repo, new(mockJWT))

	repo.On("GetByEmail", mock.Anything, "old@example.com").Return(&domain.Client{
		Email:    "old@example.com",
		IsActive: false,
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "old@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}
