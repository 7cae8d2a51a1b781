package model

import "github.com/templetoayurveda/backend/pkg/api/gemini"

type ChatRequest struct {
	Prompt            string `json:"prompt"`
	SystemInstruction string `json:"system_instruction"`
}

type ChatResponse struct {
	Text string `json:"text"`
}

// ClassifyWasteRequest is sent as multipart/form-data with an "image" part.
type ClassifyWasteRequest struct{}

type ClassifyWasteResponse struct {
	Classification gemini.Classification `json:"classification"`
}

type RouteRequest struct {
	Location    string `json:"location"`
	Destination string `json:"destination"`
}

type RouteResponse struct {
	Text string `json:"text"`
}
