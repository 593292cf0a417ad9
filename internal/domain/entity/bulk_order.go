package entity

import "time"

// Bulk order statuses. The set is advisory and not enforced on update.
const (
	BulkOrderStatusNew       = "new"
	BulkOrderStatusContacted = "contacted"
	BulkOrderStatusCompleted = "completed"
)

// BulkOrder is a wholesale enquiry submitted through the public form.
type BulkOrder struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ProductType string `json:"productType"`
	Quantity    string `json:"quantity"`
	Message     string `json:"message"`
	CreatedAt   string `json:"createdAt"`
	Status      string `json:"status"`
}

// BlankBulkOrder returns a bulk order holding only default values.
func BlankBulkOrder() *BulkOrder {
	return &BulkOrder{Status: BulkOrderStatusNew}
}

type BulkOrderInput struct {
	Name        string `json:"name" validate:"required"`
	Company     string `json:"company"`
	Email       string `json:"email"`
	Phone       string `json:"phone" validate:"required"`
	ProductType string `json:"productType" validate:"required"`
	Quantity    string `json:"quantity" validate:"required"`
	Message     string `json:"message"`
}

type BulkOrderPatch struct {
	Name        *string `json:"name,omitempty"`
	Company     *string `json:"company,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	ProductType *string `json:"productType,omitempty"`
	Quantity    *string `json:"quantity,omitempty"`
	Message     *string `json:"message,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// NewBulkOrder builds a freshly submitted order with status "new".
func NewBulkOrder(id string, in *BulkOrderInput, now time.Time) *BulkOrder {
	return &BulkOrder{
		ID:          id,
		Name:        in.Name,
		Company:     in.Company,
		Email:       in.Email,
		Phone:       in.Phone,
		ProductType: in.ProductType,
		Quantity:    in.Quantity,
		Message:     in.Message,
		CreatedAt:   FormatTimestamp(now),
		Status:      BulkOrderStatusNew,
	}
}

// FormatTimestamp renders t as an ISO-8601 UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
