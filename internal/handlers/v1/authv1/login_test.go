package authv1

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/service"
	userstore "github.com/carson-networks/finance-tracker/internal/storage/user"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Login(ctx context.Context, email, password string) (*userstore.User, *auth.TokenPair, error) {
	args := m.Called(ctx, email, password)
	account, _ := args.Get(0).(*userstore.User)
	pair, _ := args.Get(1).(*auth.TokenPair)
	return account, pair, args.Error(2)
}

func TestHTTP_Login(t *testing.T) {
	account := &userstore.User{
		ID:    uuid.Must(uuid.NewV4()),
		Email: "jordan@example.com",
	}

	mockSvc := new(mockAuthenticator)
	mockSvc.On("Login", mock.Anything, "jordan@example.com", "hunter2hunter2").
		Return(account, &auth.TokenPair{
			AccessToken:  "access",
			RefreshToken: "refresh",
		}, nil)

	_, api := humatest.New(t)
	NewLoginHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/login", map[string]any{
		"email":    "jordan@example.com",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, 200, resp.Code)

	var body LoginResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, account.ID.String(), body.User.ID)
	assert.Equal(t, "refresh", body.Tokens.RefreshToken)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_Login_WrongPassword(t *testing.T) {
	mockSvc := new(mockAuthenticator)
	mockSvc.On("Login", mock.Anything, "jordan@example.com", "wrong-password").
		Return(nil, nil, service.ErrInvalidCredentials)

	_, api := humatest.New(t)
	NewLoginHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/login", map[string]any{
		"email":    "jordan@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, 401, resp.Code)
}
