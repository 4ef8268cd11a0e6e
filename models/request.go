package models

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
	StatusReturned RequestStatus = "returned"
)

type ProductType string

const (
	Returnable    ProductType = "Returnable"
	NonReturnable ProductType = "Non-returnable"
)
