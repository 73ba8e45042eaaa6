package handler

import (
	"net/http"
	"time"

	"shopstock/internal/apierror"
	"shopstock/internal/dto"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// CreateSale godoc
// @Summary      Sell one unit of a product
// @Description  Atomically debits stock by one, records the priced sale, and writes the inventory audit row. Emails a PDF receipt when a customer email is given.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id   path string               true  "Product UUID"
// @Param        body body dto.CreateSaleRequest true "Channel and optional customer email"
// @Success      201  {object} dto.SaleResponse
// @Failure      400  {object} apierror.APIError "out of stock"
// @Failure      404  {object} apierror.APIError
// @Router       /v1/products/{id}/sales [post]
func (h *SalesHandler) CreateSale(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	var req dto.CreateSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSale(c.Request.Context(), productID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetSale godoc
// @Summary  Get one sale
// @Tags     sales
// @Produce  json
// @Param    id path string true "Sale UUID"
// @Success  200 {object} dto.SaleResponse
// @Failure  404 {object} apierror.APIError
// @Router   /v1/sales/{id} [get]
func (h *SalesHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid sale id"))
		return
	}
	resp, err := h.svc.GetSale(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListSales godoc
// @Summary  List sales
// @Tags     sales
// @Produce  json
// @Param    start_date  query string false "YYYY-MM-DD, inclusive"
// @Param    end_date    query string false "YYYY-MM-DD, inclusive"
// @Param    product_id  query string false "Product UUID"
// @Param    category_id query string false "Category UUID"
// @Success  200 {array} dto.SaleResponse
// @Failure  422 {object} apierror.APIError
// @Router   /v1/sales [get]
func (h *SalesHandler) ListSales(c *gin.Context) {
	filter, ok := parseSaleFilter(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListSales(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// parseSaleFilter reads the optional query filters. Dates are calendar days
// with inclusive bounds, so the end date covers its whole day.
func parseSaleFilter(c *gin.Context) (dto.SaleFilter, bool) {
	var filter dto.SaleFilter

	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("start_date must be YYYY-MM-DD"))
			return filter, false
		}
		filter.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("end_date must be YYYY-MM-DD"))
			return filter, false
		}
		end := t.Add(24*time.Hour - time.Second)
		filter.EndDate = &end
	}
	if v := c.Query("product_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("product_id must be a UUID"))
			return filter, false
		}
		filter.ProductID = &id
	}
	if v := c.Query("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("category_id must be a UUID"))
			return filter, false
		}
		filter.CategoryID = &id
	}
	return filter, true
}
