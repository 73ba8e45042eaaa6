package handler

import (
	"net/http"
	"strconv"

	"shopstock/internal/apierror"
	"shopstock/internal/dto"
	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	svc              service.InventoryService
	defaultThreshold int
}

func NewInventoryHandler(svc service.InventoryService, defaultThreshold int) *InventoryHandler {
	return &InventoryHandler{svc: svc, defaultThreshold: defaultThreshold}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateInventory(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid inventory id"))
		return
	}
	resp, err := h.svc.GetInventory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) List(c *gin.Context) {
	resp, err := h.svc.ListInventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AdjustStock godoc
// @Summary      Set the stock level of an inventory row
// @Description  Writes the new absolute stock value together with its audit log entry, atomically.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        id   path string                true "Inventory UUID"
// @Param        body body dto.AdjustStockRequest true "New stock and change reason"
// @Success      200  {object} dto.InventoryResponse
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.APIError "negative stock or unknown reason"
// @Router       /v1/inventory/{id}/stock [patch]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid inventory id"))
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustStock(c.Request.Context(), id, *req.Stock, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LowStock godoc
// @Summary  List inventory rows at or below a stock threshold
// @Tags     inventory
// @Produce  json
// @Param    threshold query int false "Stock threshold (default 5)"
// @Success  200 {array} dto.LowStockItem
// @Router   /v1/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	threshold := h.defaultThreshold
	if v := c.Query("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("threshold must be an integer"))
			return
		}
		threshold = n
	}
	resp, err := h.svc.ListLowStock(c.Request.Context(), threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logs godoc
// @Summary  List stock change audit entries
// @Tags     inventory
// @Produce  json
// @Param    inventory_id query string false "Inventory UUID"
// @Success  200 {array} dto.InventoryLogResponse
// @Router   /v1/inventory/logs [get]
func (h *InventoryHandler) Logs(c *gin.Context) {
	var inventoryID *uuid.UUID
	if v := c.Query("inventory_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("inventory_id must be a UUID"))
			return
		}
		inventoryID = &id
	}
	resp, err := h.svc.ListLogs(c.Request.Context(), inventoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
