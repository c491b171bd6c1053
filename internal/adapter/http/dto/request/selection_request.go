package request

type SelectionRequest struct {
	OfferingID int64 `json:"offering_id" binding:"required" example:"17933"`
}
