package category

import (
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage/dberr"
)

func TestHTTP_DeleteCategory(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.DeleteCategory")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.DeleteCategory)
			assert.Equal(t, userID, action.UserID)
			assert.Equal(t, categoryID, action.CategoryID)
		}).
		Return(nil)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(userID))
	NewDeleteCategoryHandler(op).Register(api)

	resp := api.Delete("/v1/category/" + categoryID.String())
	assert.Equal(t, 200, resp.Code)
	op.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_NotFound(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).Return(dberr.ErrNotFound)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(uuid.Must(uuid.NewV4())))
	NewDeleteCategoryHandler(op).Register(api)

	resp := api.Delete("/v1/category/" + uuid.Must(uuid.NewV4()).String())
	assert.Equal(t, 404, resp.Code)
}

func TestHTTP_DeleteCategory_InvalidID(t *testing.T) {
	op := new(mockProcessor)

	_, api := humatest.New(t)
	api.UseMiddleware(authenticate(uuid.Must(uuid.NewV4())))
	NewDeleteCategoryHandler(op).Register(api)

	resp := api.Delete("/v1/category/not-a-uuid")
	assert.Equal(t, 400, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
