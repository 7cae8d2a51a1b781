package reward

import (
	"context"
	"math"

	"github.com/templetoayurveda/backend/internal/common"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/templetoayurveda/backend/pkg/xredis"
)

const (
	// CoinsPerKg is the green-coin rate for donated waste.
	CoinsPerKg = 10

	// VolunteerDutyCoins is the flat reward for an approved volunteer duty.
	VolunteerDutyCoins = 10

	// MaxStars caps the temple star rating.
	MaxStars = 5

	// KgPerStar is the donated weight a temple needs for each star.
	KgPerStar = 10
)

// CoinsForWeight converts a donated weight to green coins, always rounding
// down so a partial kilogram never mints a coin.
func CoinsForWeight(weightKg float64) uint64 {
	if weightKg <= 0 {
		return 0
	}

	return uint64(math.Floor(weightKg * CoinsPerKg))
}

// StarsForWaste converts a lifetime donated weight to a star rating.
func StarsForWaste(totalKg float64) int {
	if totalKg <= 0 {
		return 0
	}

	stars := int(math.Floor(totalKg / KgPerStar))
	if stars > MaxStars {
		return MaxStars
	}

	return stars
}

// Ledger applies reward credits to user balances. All Credit methods expect to
// run inside the caller's database transaction so the balance moves together
// with the status change that earned it.
type Ledger struct {
	userRepo repository.UserRepository
}

func NewLedger(userRepo repository.UserRepository) *Ledger {
	return &Ledger{userRepo: userRepo}
}

// CreditDonation pays out a completed waste donation. It increments the
// beneficiary's coins and lifetime donated weight, then recomputes the star
// rating from the new total.
func (l *Ledger) CreditDonation(ctx context.Context, userID string, weightKg float64) (uint64, error) {
	coins := CoinsForWeight(weightKg)
	if err := l.userRepo.IncreaseReward(ctx, userID, coins, weightKg); err != nil {
		return 0, err
	}

	user, err := l.userRepo.GetByID(ctx, userID)
	if err != nil {
		return 0, err
	}

	stars := StarsForWaste(user.WasteDonatedKg)
	if stars != user.GreenStars {
		if err := l.userRepo.UpdateStars(ctx, userID, stars); err != nil {
			return 0, err
		}
	}

	common.PromCounters[common.RewardCreditedTotal].WithLabelValues("donation").Inc()
	return coins, nil
}

// CreditVolunteerDuty pays out an approved volunteer duty.
func (l *Ledger) CreditVolunteerDuty(ctx context.Context, userID string) (uint64, error) {
	if err := l.userRepo.IncreaseReward(ctx, userID, VolunteerDutyCoins, 0); err != nil {
		return 0, err
	}

	common.PromCounters[common.RewardCreditedTotal].WithLabelValues("volunteer_duty").Inc()
	return VolunteerDutyCoins, nil
}

// UpdateLeaderboard refreshes the redis ranking boards after a credit has
// been committed. The boards are a cache rebuilt from the database on demand,
// so a failure here is logged and swallowed.
func (l *Ledger) UpdateLeaderboard(
	ctx context.Context, redisClient xredis.Client, userID string, coins uint64, weightKg float64,
) {
	if redisClient == nil {
		return
	}

	if coins > 0 {
		l.incrBoard(ctx, redisClient, common.RedisKeyCoinsLeaderboard(), float64(coins), userID)
	}

	if weightKg > 0 {
		l.incrBoard(ctx, redisClient, common.RedisKeyWasteLeaderboard(), weightKg, userID)
	}
}

// incrBoard only touches a board which is already cached. A missing board is
// rebuilt from the database the next time someone reads it.
func (l *Ledger) incrBoard(
	ctx context.Context, redisClient xredis.Client, key string, incr float64, userID string,
) {
	ok, err := redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot call exist redis: %v", err)
		return
	}

	if !ok {
		return
	}

	if err := redisClient.ZIncrBy(ctx, key, incr, userID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot update leaderboard %s: %v", key, err)
	}
}
