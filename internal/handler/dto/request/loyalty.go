package request

import "github.com/google/uuid"

type AdjustPointsRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Points     int64     `json:"points" binding:"required"`
	Reason     string    `json:"reason" binding:"required"`
}
