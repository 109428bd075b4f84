package dto

import "github.com/guttosm/stockprice/internal/domain/models"

// PricesResponse represents the JSON structure returned by GET /api/v1/prices.
type PricesResponse struct {
	Data  []models.Record `json:"data"`               // Records on the requested page
	Page  int             `json:"page" example:"1"`   // Requested page (1-based)
	Limit int             `json:"limit" example:"10"` // Requested page size
	Count int             `json:"count" example:"10"` // Number of records in Data
}

// PriceListResponse represents the JSON structure returned by GET /api/v1/prices/all.
type PriceListResponse struct {
	Data  []models.Record `json:"data"`
	Count int             `json:"count" example:"1800"`
}
