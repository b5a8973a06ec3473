package category

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/auth"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

// authenticate injects a fixed user into every request, standing in for the
// bearer token middleware.
func authenticate(userID uuid.UUID) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
	}
}

func TestHTTP_CreateCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())

	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateCategory")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.CreateCategory)
			assert.Equal(t, userID, action.UserID)
			assert.Equal(t, "Groceries", action.Name)
			action.CreatedID = createdID
		}).
		Return(nil)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewCreateCategoryHandler(op).Register(api)

	resp := api.Post("/v1/category", map[string]any{
		"name":        "Groceries",
		"description": "Food and household",
	})
	assert.Equal(t, 201, resp.Code)

	var body CreateCategoryResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, createdID.String(), body.ID)
	op.AssertExpectations(t)
}

func TestHTTP_CreateCategory_DuplicateName(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).Return(dberr.ErrConflict)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(uuid.Must(uuid.NewV4())))
	NewCreateCategoryHandler(op).Register(api)

	resp := api.Post("/v1/category", map[string]any{
		"name": "Groceries",
	})
	assert.Equal(t, 409, resp.Code)
}

func TestHTTP_CreateCategory_BlankName(t *testing.T) {
	op := new(mockProcessor)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(uuid.Must(uuid.NewV4())))
	NewCreateCategoryHandler(op).Register(api)

	resp := api.Post("/v1/category", map[string]any{
		"name": "   ",
	})
	assert.Equal(t, 400, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_CreateCategory_Unauthenticated(t *testing.T) {
	op := new(mockProcessor)

	_, api := humatest.New(t)
	NewCreateCategoryHandler(op).Register(api)

	resp := api.Post("/v1/category", map[string]any{
		"name": "Groceries",
	})
	assert.Equal(t, 401, resp.Code)
}
