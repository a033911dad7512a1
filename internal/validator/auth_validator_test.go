package validator

import (
	"context"
	"errors"
	"testing"

	"fashionstore/internal/domain/model"
	"fashionstore/internal/repository"
	auth "fashionstore/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type userRepoMock struct{ mock.Mock }

func (m *userRepoMock) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *userRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func TestValidateRegister(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"missing email", "", "password123", auth.ErrMissingCredentials},
		{"missing password", "a@example.com", "", auth.ErrMissingCredentials},
		{"bad email", "not-an-email", "password123", auth.ErrInvalidEmailFormat},
		{"short password", "a@example.com", "1234567", auth.ErrPasswordTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := new(userRepoMock)
			v := NewAuthValidator(users)

			err := v.ValidateRegister(context.Background(), tc.email, tc.password)

			assert.ErrorIs(t, err, tc.want)
			users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestValidateRegister_Duplicate(t *testing.T) {
	users := new(userRepoMock)
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(&model.User{ID: 1}, nil).Once()

	err := NewAuthValidator(users).ValidateRegister(context.Background(), " a@example.com ", "password123")

	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestValidateRegister_OK(t *testing.T) {
	users := new(userRepoMock)
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, repository.ErrUserNotFound).Once()

	assert.NoError(t, NewAuthValidator(users).ValidateRegister(context.Background(), "a@example.com", "password123"))
}

func TestValidateRegister_LookupError(t *testing.T) {
	users := new(userRepoMock)
	boom := errors.New("boom")
	users.On("FindByEmail", mock.Anything, "a@example.com").Return(nil, boom).Once()

	assert.ErrorIs(t, NewAuthValidator(users).ValidateRegister(context.Background(), "a@example.com", "password123"), boom)
}

func TestValidateLogin(t *testing.T) {
	v := NewAuthValidator(new(userRepoMock))

	assert.ErrorIs(t, v.ValidateLogin(context.Background(), " ", "x"), auth.ErrMissingCredentials)
	assert.ErrorIs(t, v.ValidateLogin(context.Background(), "a@example.com", ""), auth.ErrMissingCredentials)
	assert.NoError(t, v.ValidateLogin(context.Background(), "a@example.com", "x"))
}
