package assetservice

import (
	"github.com/google/uuid"
)

type Asset struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ProductName     string    `json:"productName" db:"product_name"`
	ProductType     string    `json:"productType" db:"product_type"`
	ProductQuantity int       `json:"productQuantity" db:"product_quantity"`
	DateAdded       string    `json:"dateAdded" db:"date_added"`
	HREmail         string    `json:"hrEmail" db:"hr_email"`
	HRName          string    `json:"hrName" db:"hr_name"`
}

type AddAssetReq struct {
	ProductName     string `json:"productName" validate:"required"`
	ProductType     string `json:"productType" validate:"required,oneof=Returnable Non-returnable"`
	ProductQuantity int    `json:"productQuantity" validate:"gte=0"`
}

type UpdateAssetReq struct {
	ProductName     string `json:"productName,omitempty"`
	ProductType     string `json:"productType,omitempty" validate:"omitempty,oneof=Returnable Non-returnable"`
	ProductQuantity *int   `json:"productQuantity,omitempty" validate:"omitempty,gte=0"`
}

// AssetFilter drives the server-side listing: search matches product name,
// Type narrows to one product type, paging is limit/offset.
type AssetFilter struct {
	Search string
	Type   string
	Limit  int
	Offset int
}
