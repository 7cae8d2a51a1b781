package model

type RankingEntry struct {
	UserID string  `json:"user_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Rank   uint64  `json:"rank"`
}

type GetRankingsRequest struct {
	Board  string `json:"board"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetRankingsResponse struct {
	Entries []RankingEntry `json:"entries"`
}

type GetMyRankRequest struct {
	Board string `json:"board"`
}

type GetMyRankResponse struct {
	Rank uint64 `json:"rank"`
}
