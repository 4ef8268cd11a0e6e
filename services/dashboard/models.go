package dashboardservice

import (
	"github.com/google/uuid"
)

type PendingRequestItem struct {
	ID             uuid.UUID `json:"id" db:"id"`
	ProductName    string    `json:"productName" db:"product_name"`
	ProductType    string    `json:"productType" db:"product_type"`
	RequesterName  string    `json:"requesterName" db:"requester_name"`
	RequesterEmail string    `json:"requesterEmail" db:"requester_email"`
	RequestDate    string    `json:"requestDate" db:"request_date"`
}

type LimitedStockAsset struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ProductName     string    `json:"productName" db:"product_name"`
	ProductType     string    `json:"productType" db:"product_type"`
	ProductQuantity int       `json:"productQuantity" db:"product_quantity"`
}

// RequestStats feeds the returnable vs non-returnable breakdown chart.
type RequestStats struct {
	TotalRequests int `json:"totalRequests" db:"total_requests"`
	Returnable    int `json:"returnable" db:"returnable"`
	NonReturnable int `json:"nonReturnable" db:"non_returnable"`
	Pending       int `json:"pending" db:"pending"`
}

type TopRequestedItem struct {
	ProductName  string `json:"productName" db:"product_name"`
	ProductType  string `json:"productType" db:"product_type"`
	RequestCount int    `json:"requestCount" db:"request_count"`
}

type EmployeeRequestItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProductName string    `json:"productName" db:"product_name"`
	ProductType string    `json:"productType" db:"product_type"`
	RequestDate string    `json:"requestDate" db:"request_date"`
	Status      string    `json:"status" db:"status"`
}
