package requestservice

import (
	"github.com/google/uuid"
)

// Request carries a denormalized copy of the asset's name and type taken at
// submission time, so history stays readable after the asset is deleted.
type Request struct {
	ID             uuid.UUID `json:"id" db:"id"`
	AssetID        uuid.UUID `json:"assetId" db:"asset_id"`
	ProductName    string    `json:"productName" db:"product_name"`
	ProductType    string    `json:"productType" db:"product_type"`
	HREmail        string    `json:"hrEmail" db:"hr_email"`
	HRName         string    `json:"hrName" db:"hr_name"`
	RequesterName  string    `json:"requesterName" db:"requester_name"`
	RequesterEmail string    `json:"requesterEmail" db:"requester_email"`
	RequestDate    string    `json:"requestDate" db:"request_date"`
	Status         string    `json:"status" db:"status"`
	Note           string    `json:"note" db:"note"`
}

type SubmitRequestReq struct {
	AssetID uuid.UUID `json:"assetId" validate:"required"`
	Note    string    `json:"note"`
}

// DecideRequestReq accepts the denormalized fields older clients send along
// with the decision; only the status matters, the rest is re-read from the
// request record so a tampered body cannot redirect the side effects.
type DecideRequestReq struct {
	Status         string `json:"status" validate:"required,oneof=approved rejected"`
	AssetID        string `json:"assetId,omitempty"`
	RequesterEmail string `json:"requesterEmail,omitempty"`
	HREmail        string `json:"hrEmail,omitempty"`
}

// DecisionResult distinguishes the three approval outcomes the caller cares
// about: decided (ModifiedCount 1), nothing matched (0), or blocked by the
// seat limit with the limit that was hit.
type DecisionResult struct {
	ModifiedCount int64
	LimitReached  bool
	CurrentLimit  int
}

// AssetSnapshot is the slice of an asset a new request copies in.
type AssetSnapshot struct {
	ID              uuid.UUID `db:"id"`
	ProductName     string    `db:"product_name"`
	ProductType     string    `db:"product_type"`
	ProductQuantity int       `db:"product_quantity"`
	HREmail         string    `db:"hr_email"`
	HRName          string    `db:"hr_name"`
}

type RequestFilter struct {
	Search string
	Status string
	Sort   string
	Limit  int
	Offset int
}
