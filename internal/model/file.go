package model

// UploadImageRequest is sent as multipart/form-data with an "image" part.
type UploadImageRequest struct{}

type UploadImageResponse struct {
	Url string `json:"url"`
}
