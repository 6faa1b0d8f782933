package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Kristian-01/nine27-mobile/models"
	"github.com/Kristian-01/nine27-mobile/repository"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[uuid.UUID]*models.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, NewTokenService("test-secret"))

	resp, svcErr := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Juan Dela Cruz",
		Email:    "juan@example.com",
		Password: "super-secret",
	})
	require.Nil(t, svcErr)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.NotEqual(t, "super-secret", resp.User.Password, "password must be stored hashed")

	login, svcErr := svc.Login(context.Background(), &LoginRequest{
		Email:    "juan@example.com",
		Password: "super-secret",
	})
	require.Nil(t, svcErr)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, NewTokenService("test-secret"))

	_, svcErr := svc.Register(context.Background(), &RegisterRequest{
		Name: "Juan", Email: "juan@example.com", Password: "super-secret",
	})
	require.Nil(t, svcErr)

	_, svcErr = svc.Register(context.Background(), &RegisterRequest{
		Name: "Impostor", Email: "juan@example.com", Password: "other-secret",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnprocessableEntity, svcErr.StatusCode)
	assert.Equal(t, "Email already registered", svcErr.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_ = repo.Create(context.Background(), &models.User{
		ID: uuid.New(), Email: "juan@example.com", Password: string(hash),
	})

	svc := NewAuthService(repo, NewTokenService("test-secret"))

	_, svcErr := svc.Login(context.Background(), &LoginRequest{
		Email: "juan@example.com", Password: "wrong-password",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
	assert.Equal(t, "Invalid credentials", svcErr.Message)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), NewTokenService("test-secret"))

	_, svcErr := svc.Login(context.Background(), &LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, NewTokenService("test-secret"))

	reg, svcErr := svc.Register(context.Background(), &RegisterRequest{
		Name: "Juan", Email: "juan@example.com", Password: "super-secret",
	})
	require.Nil(t, svcErr)

	updated, svcErr := svc.UpdateProfile(context.Background(), reg.User.ID, &UpdateProfileRequest{
		Name:     "Juan Dela Cruz",
		Password: "brand-new-secret",
	})
	require.Nil(t, svcErr)
	assert.Equal(t, "Juan Dela Cruz", updated.Name)
	assert.Equal(t, "juan@example.com", updated.Email, "email unchanged when omitted")

	_, svcErr = svc.Login(context.Background(), &LoginRequest{
		Email: "juan@example.com", Password: "brand-new-secret",
	})
	assert.Nil(t, svcErr)

	_, svcErr = svc.Login(context.Background(), &LoginRequest{
		Email: "juan@example.com", Password: "super-secret",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
}

func TestUpdateProfileEmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, NewTokenService("test-secret"))

	_, svcErr := svc.Register(context.Background(), &RegisterRequest{
		Name: "Maria", Email: "maria@example.com", Password: "super-secret",
	})
	require.Nil(t, svcErr)

	reg, svcErr := svc.Register(context.Background(), &RegisterRequest{
		Name: "Juan", Email: "juan@example.com", Password: "super-secret",
	})
	require.Nil(t, svcErr)

	_, svcErr = svc.UpdateProfile(context.Background(), reg.User.ID, &UpdateProfileRequest{
		Email: "maria@example.com",
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusUnprocessableEntity, svcErr.StatusCode)
	assert.Equal(t, "Email already registered", svcErr.Message)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), NewTokenService("test-secret"))

	_, svcErr := svc.UpdateProfile(context.Background(), uuid.New(), &UpdateProfileRequest{Name: "Ghost"})
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestProfileNotFound(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), NewTokenService("test-secret"))

	_, svcErr := svc.Profile(context.Background(), uuid.New())
	require.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}
