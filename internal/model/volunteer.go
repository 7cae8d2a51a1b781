package model

type VolunteerRequest struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	DryingUnitID     string `json:"drying_unit_id"`
	AssignmentStatus string `json:"assignment_status"`
	RejectionReason  string `json:"rejection_reason,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type VolunteerDuty struct {
	ID          string `json:"id"`
	VolunteerID string `json:"volunteer_id"`
	AssignedBy  string `json:"assigned_by"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Comment     string `json:"comment,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type ApplyVolunteerRequest struct {
	DryingUnitID string `json:"drying_unit_id"`
}

type ApplyVolunteerResponse struct {
	ID string `json:"id"`
}

type ReviewVolunteerRequest struct {
	ID              string `json:"id"`
	Action          string `json:"action"`
	RejectionReason string `json:"rejection_reason"`
}

type ReviewVolunteerResponse struct{}

type GetVolunteerRequestsRequest struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetVolunteerRequestsResponse struct {
	Requests []VolunteerRequest `json:"requests"`
}

type AssignDutyRequest struct {
	VolunteerID string `json:"volunteer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type AssignDutyResponse struct {
	ID string `json:"id"`
}

type RequestDutyCompletionRequest struct {
	ID string `json:"id"`
}

type RequestDutyCompletionResponse struct{}

type ReviewDutyRequest struct {
	ID      string `json:"id"`
	Action  string `json:"action"`
	Comment string `json:"comment"`
}

type ReviewDutyResponse struct{}

type GetMyDutiesRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyDutiesResponse struct {
	Duties []VolunteerDuty `json:"duties"`
}

type GetAssignedDutiesRequest struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetAssignedDutiesResponse struct {
	Duties []VolunteerDuty `json:"duties"`
}
