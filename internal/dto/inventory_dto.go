package dto

type CreateInventoryRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Stock     int    `json:"stock" validate:"min=0"`
}

// AdjustStockRequest sets an absolute stock value with an audit reason.
// Stock is a pointer so that an explicit 0 is distinguishable from an
// omitted field; negative values are rejected by the service (the validator
// cannot express "present and >= 0" on a plain int without losing 0).
type AdjustStockRequest struct {
	Stock  *int   `json:"stock" validate:"required"`
	Reason string `json:"reason"`
}

type InventoryResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Stock     int    `json:"stock"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type LowStockItem struct {
	InventoryID string `json:"inventory_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
}

type InventoryLogResponse struct {
	ID          string `json:"id"`
	InventoryID string `json:"inventory_id"`
	OldStock    int    `json:"old_stock"`
	NewStock    int    `json:"new_stock"`
	Reason      string `json:"reason"`
	ChangedAt   string `json:"changed_at"`
}
