package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbertime/appointment-service/internal/domain"
	userRepo "github.com/barbertime/appointment-service/internal/infra/storage/user"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, exists := f.users[u.Username]; exists {
		return nil, userRepo.ErrUsernameTaken
	}
	f.nextID++
	created := *u
	created.ID = f.nextID
	f.users[u.Username] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestSignup_Success(t *testing.T) {
	svc := NewService(newFakeUserRepo(), noopLogger{})

	user, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "barber",
		Phone:    "+7 999 123-45-67",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "barber", user.Username)
}

func TestSignup_UsernameTaken(t *testing.T) {
	svc := NewService(newFakeUserRepo(), noopLogger{})

	req := &SignupRequest{Username: "barber", Phone: "+7 999 123-45-67", Password: "secret"}
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), req)

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignup_MissingFields(t *testing.T) {
	svc := NewService(newFakeUserRepo(), noopLogger{})

	_, err := svc.Signup(context.Background(), &SignupRequest{Username: "barber"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_Success(t *testing.T) {
	svc := NewService(newFakeUserRepo(), noopLogger{})

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "barber",
		Phone:    "+7 999 123-45-67",
		Password: "secret",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &LoginRequest{Username: "barber", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "barber", user.Username)
}

func TestLogin_WrongPasswordAndUnknownUserLookTheSame(t *testing.T) {
	svc := NewService(newFakeUserRepo(), noopLogger{})

	_, err := svc.Signup(context.Background(), &SignupRequest{
		Username: "barber",
		Phone:    "+7 999 123-45-67",
		Password: "secret",
	})
	require.NoError(t, err)

	_, wrongPassErr := svc.Login(context.Background(), &LoginRequest{Username: "barber", Password: "wrong"})
	_, unknownUserErr := svc.Login(context.Background(), &LoginRequest{Username: "ghost", Password: "secret"})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUserErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr, unknownUserErr)
}
