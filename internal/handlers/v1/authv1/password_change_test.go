package authv1

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockPasswordChanger struct {
	mock.Mock
}

func (m *mockPasswordChanger) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func TestHTTP_ChangePassword(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockPasswordChanger)
	mockSvc.On("ChangePassword", mock.Anything, userID, "old-password", "new-password-1").Return(nil)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewChangePasswordHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/password-change", map[string]any{
		"currentPassword": "old-password",
		"newPassword":     "new-password-1",
	})
	assert.Equal(t, 200, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ChangePassword_WrongCurrentPassword(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockPasswordChanger)
	mockSvc.On("ChangePassword", mock.Anything, userID, "not-my-password", "new-password-1").
		Return(errors.Wrap(service.ErrInvalidInput, "current password is incorrect"))

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewChangePasswordHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/password-change", map[string]any{
		"currentPassword": "not-my-password",
		"newPassword":     "new-password-1",
	})
	assert.Equal(t, 400, resp.Code)
}

func TestHTTP_ChangePassword_ShortNewPassword(t *testing.T) {
	mockSvc := new(mockPasswordChanger)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(uuid.Must(uuid.NewV4())))
	NewChangePasswordHandler(mockSvc).Register(api)

	resp := api.Post("/v1/auth/password-change", map[string]any{
		"currentPassword": "old-password",
		"newPassword":     "short",
	})
	assert.Equal(t, 422, resp.Code)
	mockSvc.AssertNotCalled(t, "ChangePassword")
}
