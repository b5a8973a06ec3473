package authv1

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
	userstore "github.com/carson-networks/finance-tracker/internal/storage/user"
)

type mockProfileUpdater struct {
	mock.Mock
}

func (m *mockProfileUpdater) UpdateProfile(ctx context.Context, userID uuid.UUID, update *userstore.UserUpdate) (*userstore.User, error) {
	args := m.Called(ctx, userID, update)
	row, _ := args.Get(0).(*userstore.User)
	return row, args.Error(1)
}

func TestHTTP_UpdateProfile(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	updated := &userstore.User{
		ID:        userID,
		Email:     "jordan@example.com",
		FirstName: "Jordan",
		LastName:  "Rivera",
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	mockSvc := new(mockProfileUpdater)
	mockSvc.On("UpdateProfile", mock.Anything, userID, mock.MatchedBy(func(u *userstore.UserUpdate) bool {
		lastName, ok := u.LastName.Get()
		return u.FirstName.IsUnset() && ok && lastName == "Rivera"
	})).Return(updated, nil)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewUpdateProfileHandler(mockSvc).Register(api)

	resp := api.Patch("/v1/auth/profile", map[string]any{
		"lastName": "Rivera",
	})
	assert.Equal(t, 200, resp.Code)

	var body UpdateProfileResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Rivera", body.User.LastName)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateProfile_BlankFirstName(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockProfileUpdater)
	mockSvc.On("UpdateProfile", mock.Anything, userID, mock.Anything).
		Return(nil, errors.Wrap(service.ErrInvalidInput, "first name must not be blank"))

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewUpdateProfileHandler(mockSvc).Register(api)

	resp := api.Patch("/v1/auth/profile", map[string]any{
		"firstName": "   ",
	})
	assert.Equal(t, 400, resp.Code)
}
