package model

type ServiceRequest struct {
	ID          string `json:"id"`
	TempleID    string `json:"temple_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type CreateServiceRequestRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type CreateServiceRequestResponse struct {
	ID string `json:"id"`
}

type ResolveServiceRequestRequest struct {
	ID string `json:"id"`
}

type ResolveServiceRequestResponse struct{}

type GetListServiceRequestRequest struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetListServiceRequestResponse struct {
	ServiceRequests []ServiceRequest `json:"service_requests"`
}
