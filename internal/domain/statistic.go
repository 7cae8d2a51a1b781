package domain

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/templetoayurveda/backend/internal/common"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/templetoayurveda/backend/pkg/xredis"
)

type StatisticDomain interface {
	GetRankings(context.Context, *model.GetRankingsRequest) (*model.GetRankingsResponse, error)
	GetMyRank(context.Context, *model.GetMyRankRequest) (*model.GetMyRankResponse, error)
}

type statisticDomain struct {
	userRepo    repository.UserRepository
	redisClient xredis.Client
}

func NewStatisticDomain(
	userRepo repository.UserRepository,
	redisClient xredis.Client,
) *statisticDomain {
	return &statisticDomain{
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

func (d *statisticDomain) GetRankings(
	ctx context.Context, req *model.GetRankingsRequest,
) (*model.GetRankingsResponse, error) {
	key, err := boardKey(req.Board)
	if err != nil {
		return nil, err
	}

	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	if err := d.ensureBoard(ctx, key); err != nil {
		return nil, err
	}

	results, err := d.redisClient.ZRevRangeWithScores(ctx, key, req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	userIDs := []string{}
	for _, z := range results {
		userIDs = append(userIDs, z.Member.(string))
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users by ids: %v", err)
		return nil, errorx.Unknown
	}

	nameMap := map[string]string{}
	for _, u := range users {
		nameMap[u.ID] = u.Name
	}

	entries := []model.RankingEntry{}
	for i, z := range results {
		userID := z.Member.(string)
		entries = append(entries, model.RankingEntry{
			UserID: userID,
			Name:   nameMap[userID],
			Score:  z.Score,
			Rank:   uint64(req.Offset + i + 1),
		})
	}

	return &model.GetRankingsResponse{Entries: entries}, nil
}

func (d *statisticDomain) GetMyRank(
	ctx context.Context, req *model.GetMyRankRequest,
) (*model.GetMyRankResponse, error) {
	key, err := boardKey(req.Board)
	if err != nil {
		return nil, err
	}

	if err := d.ensureBoard(ctx, key); err != nil {
		return nil, err
	}

	rank, err := d.redisClient.ZRevRank(ctx, key, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get rev rank redis: %v", err)
		return &model.GetMyRankResponse{Rank: 0}, nil
	}

	return &model.GetMyRankResponse{Rank: rank + 1}, nil
}

// ensureBoard rebuilds a ranking board from the database when it has fallen
// out of redis.
func (d *statisticDomain) ensureBoard(ctx context.Context, key string) error {
	ok, err := d.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	if ok {
		return nil
	}

	holders, err := d.userRepo.GetRewardHolders(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reward holders: %v", err)
		return errorx.Unknown
	}

	for _, u := range holders {
		var score float64
		switch key {
		case common.RedisKeyCoinsLeaderboard():
			score = float64(u.GreenCoins)
		case common.RedisKeyWasteLeaderboard():
			score = u.WasteDonatedKg
		}

		if score == 0 {
			continue
		}

		err := d.redisClient.ZAdd(ctx, key, redis.Z{Member: u.ID, Score: score})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot call ZAdd redis: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}

func boardKey(board string) (string, error) {
	switch board {
	case common.CoinsBoard:
		return common.RedisKeyCoinsLeaderboard(), nil
	case common.WasteBoard:
		return common.RedisKeyWasteLeaderboard(), nil
	default:
		return "", errorx.New(errorx.BadRequest, "Ranking board must be coins or waste")
	}
}
