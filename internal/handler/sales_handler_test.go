package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopstock/internal/dto"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── SaleService stub ─────────────────────────────────────────────────────────

type stubSaleService struct {
	createErr error
	lastReq   dto.CreateSaleRequest
}

func (s *stubSaleService) CreateSale(_ context.Context, productID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.lastReq = req
	return &dto.SaleResponse{
		ID:         uuid.NewString(),
		ProductID:  productID.String(),
		Quantity:   1,
		TotalPrice: decimal.RequireFromString("10.00"),
		Channel:    "retail",
	}, nil
}

func (s *stubSaleService) GetSale(_ context.Context, _ uuid.UUID) (*dto.SaleResponse, error) {
	return nil, service.ErrNotFound
}

func (s *stubSaleService) ListSales(_ context.Context, _ dto.SaleFilter) ([]dto.SaleResponse, error) {
	return []dto.SaleResponse{}, nil
}

func newSalesRouter(svc service.SaleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSalesHandler(svc)
	r.POST("/v1/products/:id/sales", h.CreateSale)
	r.GET("/v1/sales", h.ListSales)
	r.GET("/v1/sales/:id", h.GetSale)
	return r
}

func postSale(r *gin.Engine, productID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/v1/products/%s/sales", productID), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateSaleEndpointCreated(t *testing.T) {
	svc := &stubSaleService{}
	r := newSalesRouter(svc)

	w := postSale(r, uuid.NewString(), `{"channel":"retail"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Quantity)
	assert.Equal(t, "retail", svc.lastReq.Channel)
}

func TestCreateSaleEndpointOutOfStock(t *testing.T) {
	r := newSalesRouter(&stubSaleService{createErr: service.ErrOutOfStock})

	w := postSale(r, uuid.NewString(), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "out of stock")
}

func TestCreateSaleEndpointProductNotFound(t *testing.T) {
	r := newSalesRouter(&stubSaleService{createErr: service.ErrNotFound})

	w := postSale(r, uuid.NewString(), `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSaleEndpointInvalidUUID(t *testing.T) {
	r := newSalesRouter(&stubSaleService{})

	w := postSale(r, "not-a-uuid", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSaleEndpointRejectsBadEmail(t *testing.T) {
	r := newSalesRouter(&stubSaleService{})

	w := postSale(r, uuid.NewString(), `{"customer_email":"not-an-email"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetSaleEndpointNotFound(t *testing.T) {
	r := newSalesRouter(&stubSaleService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSalesEndpointBadDate(t *testing.T) {
	r := newSalesRouter(&stubSaleService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/sales?start_date=junk", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
