package common

import "fmt"

const (
	CoinsBoard = "coins"
	WasteBoard = "waste"
)

func RedisKeyCoinsLeaderboard() string {
	return "leaderboard:coins"
}

func RedisKeyWasteLeaderboard() string {
	return "leaderboard:waste"
}

func RedisKeyUserProfile(userID string) string {
	return fmt.Sprintf("userprofile:%s", userID)
}
