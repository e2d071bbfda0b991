package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperionhq/hyperion/internal/logger"
	"github.com/hyperionhq/hyperion/internal/models"
	"github.com/hyperionhq/hyperion/internal/store"
)

// fakeStore is an in-memory UserStore keyed by email.
type fakeStore struct {
	nextID int64
	users  map[string]models.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, users: map[string]models.User{}}
}

func (s *fakeStore) Create(_ context.Context, user models.User) (models.User, error) {
	if _, ok := s.users[user.Email]; ok {
		return models.User{}, store.ErrDuplicateEmail
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.Email] = user
	return user, nil
}

func (s *fakeStore) GetByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return user, nil
}

func (s *fakeStore) GetByID(_ context.Context, id int64) (models.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *fakeStore) List(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func newTestService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	tokens, err := NewTokenManager("secret", "HS256")
	require.NoError(t, err)
	st := newFakeStore()
	return NewService(st, NewHasher(), tokens, logger.New(8)), st
}

func register(t *testing.T, s *Service, email, password string) models.User {
	t.Helper()
	user, err := s.Register(context.Background(), RegisterInput{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       email,
		PhoneNumber: "5551234",
		Password:    password,
	})
	require.NoError(t, err)
	return user
}

func TestService_Register(t *testing.T) {
	s, _ := newTestService(t)

	user := register(t, s, "x@y.com", "pw123")

	assert.Equal(t, "x@y.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Permission)
	assert.Equal(t, "1", user.PhoneCountryCode)
	assert.NotEqual(t, "pw123", user.HashedPassword)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	s, st := newTestService(t)

	first := register(t, s, "x@y.com", "pw123")

	_, err := s.Register(context.Background(), RegisterInput{
		FirstName:   "Other",
		LastName:    "Person",
		Email:       "x@y.com",
		PhoneNumber: "5559999",
		Password:    "different",
	})
	require.ErrorIs(t, err, store.ErrDuplicateEmail)

	// first record untouched
	kept, err := st.GetByEmail(context.Background(), "x@y.com")
	require.NoError(t, err)
	assert.Equal(t, first, kept)
}

func TestService_Login_IndistinguishableFailures(t *testing.T) {
	s, _ := newTestService(t)
	register(t, s, "x@y.com", "pw123")

	_, wrongPassword := s.Login(context.Background(), "x@y.com", "nope")
	_, unknownUser := s.Login(context.Background(), "nobody@y.com", "pw123")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestService_RegisterLoginVerify(t *testing.T) {
	s, _ := newTestService(t)

	created := register(t, s, "x@y.com", "pw123")

	token, err := s.Login(context.Background(), "x@y.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.Type)

	resolved, err := s.VerifyToken(context.Background(), token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resolved.ID)
	assert.Equal(t, "x@y.com", resolved.Email)
}

func TestService_VerifyToken_InvalidToken(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.VerifyToken(context.Background(), "not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifyToken_UserGone(t *testing.T) {
	s, st := newTestService(t)
	register(t, s, "x@y.com", "pw123")

	token, err := s.Login(context.Background(), "x@y.com", "pw123")
	require.NoError(t, err)

	delete(st.users, "x@y.com")

	_, err = s.VerifyToken(context.Background(), token.AccessToken)
	require.ErrorIs(t, err, ErrUserNotFound)
}
