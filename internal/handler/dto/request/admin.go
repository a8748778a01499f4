package request

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

// ListReservationsQuery binds the console's filter controls.
type ListReservationsQuery struct {
	Status string `form:"status,default=all"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
}
