package domain

import (
	"context"
	"sort"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/testutil"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

// fakeBoard is a redis client good enough for a single sorted set.
func fakeBoard() *testutil.MockRedisClient {
	scores := map[string]float64{}
	return &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return len(scores) > 0, nil
		},
		ZAddFunc: func(ctx context.Context, key string, z redis.Z) error {
			scores[z.Member.(string)] = z.Score
			return nil
		},
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			all := []redis.Z{}
			for member, score := range scores {
				all = append(all, redis.Z{Member: member, Score: score})
			}
			sort.Slice(all, func(i, j int) bool { return all[i].Score > all[j].Score })

			if offset >= len(all) {
				return nil, nil
			}

			end := offset + limit
			if end > len(all) {
				end = len(all)
			}

			return all[offset:end], nil
		},
	}
}

func Test_statisticDomain_GetRankings_rebuilds_board(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.IncreaseReward(ctx, testutil.User1.ID, 120, 12))
	require.NoError(t, userRepo.IncreaseReward(ctx, testutil.User2.ID, 50, 5))

	d := NewStatisticDomain(userRepo, fakeBoard())

	rankings, err := d.GetRankings(ctx, &model.GetRankingsRequest{Board: "coins", Limit: 10})
	require.NoError(t, err)
	require.Len(t, rankings.Entries, 2)

	require.Equal(t, testutil.User1.ID, rankings.Entries[0].UserID)
	require.Equal(t, testutil.User1.Name, rankings.Entries[0].Name)
	require.Equal(t, float64(120), rankings.Entries[0].Score)
	require.Equal(t, uint64(1), rankings.Entries[0].Rank)

	require.Equal(t, testutil.User2.ID, rankings.Entries[1].UserID)
	require.Equal(t, uint64(2), rankings.Entries[1].Rank)
}

func Test_statisticDomain_GetRankings_rejects_unknown_board(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	d := NewStatisticDomain(repository.NewUserRepository(), fakeBoard())

	_, err := d.GetRankings(ctx, &model.GetRankingsRequest{Board: "karma", Limit: 10})
	require.Error(t, err)
	require.Equal(t, errorx.BadRequest, err.(errorx.Error).Code)
}

func Test_statisticDomain_GetMyRank(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.IncreaseReward(ctx, testutil.User1.ID, 30, 3))

	board := fakeBoard()
	board.ZRevRankFunc = func(ctx context.Context, key string, member string) (uint64, error) {
		return 0, nil
	}

	d := NewStatisticDomain(userRepo, board)

	userCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	rank, err := d.GetMyRank(userCtx, &model.GetMyRankRequest{Board: "waste"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), rank.Rank)
}
