package model

type WasteLog struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	AmountKg   float64 `json:"amount_kg"`
	WasteType  string  `json:"waste_type"`
	Status     string  `json:"status"`
	TraceToken string  `json:"trace_token"`
	CreatedAt  string  `json:"created_at"`
}

type TraceStage struct {
	Name    string `json:"name"`
	Done    bool   `json:"done"`
	Current bool   `json:"current"`
}

type CreateWasteLogRequest struct {
	AmountKg  float64 `json:"amount_kg"`
	WasteType string  `json:"waste_type"`
}

type CreateWasteLogResponse struct {
	ID           string `json:"id"`
	TraceToken   string `json:"trace_token"`
	CoinsAwarded uint64 `json:"coins_awarded"`
}

type AdvanceWasteLogRequest struct {
	ID string `json:"id"`
}

type AdvanceWasteLogResponse struct {
	Status string `json:"status"`
}

type GetWasteTraceRequest struct {
	TraceToken string `json:"trace_token"`
}

type GetWasteTraceResponse struct {
	WasteLog WasteLog     `json:"waste_log"`
	Stages   []TraceStage `json:"stages"`
}

type GetMyWasteLogsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyWasteLogsResponse struct {
	WasteLogs []WasteLog `json:"waste_logs"`
}
