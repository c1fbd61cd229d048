package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_Dashboard(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().Dashboard(mock.Anything).Return(&usecase.DashboardOutput{
		ProductCount:  12,
		OrderCount:    30,
		UserCount:     5,
		PendingOrders: 4,
		RecentOrders:  []*entity.Order{{ID: 30}},
	}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/admin", "")

	require.NoError(t, handler.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"PendingOrders":4`)
}

func TestAdminHandler_CreateProduct(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().
		CreateProduct(mock.Anything, usecase.ProductInput{
			Name:     "camera",
			Price:    99.5,
			Stock:    3,
			Category: "optics",
			IsActive: true,
		}).
		Return(&entity.Product{ID: 8, Name: "camera", IsActive: true}, nil)

	c, rec := newJSONContext(t, http.MethodPost, "/admin/products/add",
		`{"name":"camera","price":99.5,"stock":3,"category":"optics","is_active":true}`)
	withUser(c, 1)

	require.NoError(t, handler.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAdminHandler_CreateProduct_RequiresName(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/admin/products/add", `{"price":1}`)
	withUser(c, 1)

	// The validation failure must answer 400 without reaching the use case.
	require.NoError(t, handler.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAdminHandler_UpdateProduct_RequiresName(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	c, rec := newJSONContext(t, http.MethodPost, "/admin/products/edit/8", `{"price":1}`)
	c.SetParamNames("id")
	c.SetParamValues("8")
	withUser(c, 1)

	require.NoError(t, handler.UpdateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().
		UpdateOrderStatus(mock.Anything, usecase.UpdateOrderStatusInput{OrderID: 7, Status: "processing"}).
		Return(nil)

	c, rec := newJSONContext(t, http.MethodPost, "/admin/orders/7/status", `{"status":"processing"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, handler.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestAdminHandler_UpdateOrderStatus_ForwardsTransitionError(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().
		UpdateOrderStatus(mock.Anything, usecase.UpdateOrderStatusInput{OrderID: 7, Status: "pending"}).
		Return(domainerrors.ErrInvalidStatusTransition)

	c, _ := newJSONContext(t, http.MethodPost, "/admin/orders/7/status", `{"status":"pending"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	err := handler.UpdateOrderStatus(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
}

func TestAdminHandler_ToggleAdmin(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ToggleAdmin(mock.Anything, usecase.ToggleAdminInput{ActorID: 1, TargetID: 2}).
		Return(&entity.User{ID: 2, Username: "bob", IsAdmin: true}, nil)

	c, rec := newJSONContext(t, http.MethodGet, "/admin/users/toggle-admin/2", "")
	c.SetParamNames("id")
	c.SetParamValues("2")
	withUser(c, 1)

	require.NoError(t, handler.ToggleAdmin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"is_admin":true`)
}

func TestAdminHandler_UploadFile_Multipart(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	uc.EXPECT().
		UploadFile(mock.Anything, mock.AnythingOfType("usecase.UploadFileInput")).
		RunAndReturn(func(_ context.Context, input usecase.UploadFileInput) (*usecase.UploadFileOutput, error) {
			assert.EqualValues(t, 1, input.UploadedBy)
			assert.Equal(t, entity.FileTypePriceList, input.FileType)
			assert.Equal(t, "q3.csv", input.OriginalName)

			content, err := io.ReadAll(input.Content)
			require.NoError(t, err)
			assert.Equal(t, "sku,price", string(content))

			return &usecase.UploadFileOutput{Upload: &entity.FileUpload{
				ID:               1,
				Filename:         "20240315_093000_q3.csv",
				OriginalFilename: "q3.csv",
				FileType:         entity.FileTypePriceList,
				UploadedBy:       1,
			}}, nil
		})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "q3.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("sku,price"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("file_type", "price_list"))
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/files/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withUser(c, 1)

	require.NoError(t, handler.UploadFile(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "20240315_093000_q3.csv")
}

func TestAdminHandler_UploadFile_MissingFile(t *testing.T) {
	uc := mockUsecase.NewMockAdminUsecase(t)
	handler := NewAdminHandler(uc, newDiscardLogger())

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("file_type", "other"))
	require.NoError(t, writer.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/files/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	withUser(c, 1)

	err := handler.UploadFile(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidUpload)
}
