package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/templetoayurveda/backend/internal/common"
	"github.com/templetoayurveda/backend/internal/domain/reward"
	"github.com/templetoayurveda/backend/internal/domain/trace"
	"github.com/templetoayurveda/backend/internal/entity"
	"github.com/templetoayurveda/backend/internal/model"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/crypto"
	"github.com/templetoayurveda/backend/pkg/errorx"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/templetoayurveda/backend/pkg/xredis"
	"gorm.io/gorm"
)

// traceTokenBytes is the entropy of a trace token, rendered as hex.
const traceTokenBytes = 16

type WasteLogDomain interface {
	Create(context.Context, *model.CreateWasteLogRequest) (*model.CreateWasteLogResponse, error)
	Advance(context.Context, *model.AdvanceWasteLogRequest) (*model.AdvanceWasteLogResponse, error)
	GetTrace(context.Context, *model.GetWasteTraceRequest) (*model.GetWasteTraceResponse, error)
	GetMyWasteLogs(context.Context, *model.GetMyWasteLogsRequest) (*model.GetMyWasteLogsResponse, error)
}

type wasteLogDomain struct {
	wasteLogRepo       repository.WasteLogRepository
	userRepo           repository.UserRepository
	ledger             *reward.Ledger
	redisClient        xredis.Client
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewWasteLogDomain(
	wasteLogRepo repository.WasteLogRepository,
	userRepo repository.UserRepository,
	ledger *reward.Ledger,
	redisClient xredis.Client,
) *wasteLogDomain {
	return &wasteLogDomain{
		wasteLogRepo:       wasteLogRepo,
		userRepo:           userRepo,
		ledger:             ledger,
		redisClient:        redisClient,
		globalRoleVerifier: common.NewGlobalRoleVerifier(userRepo),
	}
}

func (d *wasteLogDomain) Create(
	ctx context.Context, req *model.CreateWasteLogRequest,
) (*model.CreateWasteLogResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when creating waste log: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if req.AmountKg <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Require a positive amount")
	}

	if req.WasteType == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a waste type")
	}

	traceToken, err := crypto.GenerateRandomHex(traceTokenBytes)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate trace token: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	log := &entity.WasteLog{
		Base:       entity.Base{ID: uuid.NewString()},
		UserID:     userID,
		AmountKg:   req.AmountKg,
		WasteType:  req.WasteType,
		Status:     entity.WasteCollected,
		TraceToken: traceToken,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.wasteLogRepo.Create(ctx, log); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create waste log: %v", err)
		return nil, errorx.Unknown
	}

	coins, err := d.ledger.CreditDonation(ctx, userID, req.AmountKg)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot credit waste log reward: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	d.ledger.UpdateLeaderboard(ctx, d.redisClient, userID, coins, req.AmountKg)

	return &model.CreateWasteLogResponse{
		ID:           log.ID,
		TraceToken:   log.TraceToken,
		CoinsAwarded: coins,
	}, nil
}

func (d *wasteLogDomain) Advance(
	ctx context.Context, req *model.AdvanceWasteLogRequest,
) (*model.AdvanceWasteLogResponse, error) {
	if err := d.globalRoleVerifier.Verify(ctx, entity.PickupUnitRoles...); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied when advancing waste log: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	log, err := d.wasteLogRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found waste log")
		}

		xcontext.Logger(ctx).Errorf("Cannot get waste log: %v", err)
		return nil, errorx.Unknown
	}

	next, ok := trace.Next(log.Status)
	if !ok {
		return nil, errorx.New(errorx.InvalidTransition,
			"Waste log has already reached its final stage")
	}

	if err := d.wasteLogRepo.AdvanceStatus(ctx, req.ID, log.Status, next); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.ConcurrentModification,
				"Waste log was advanced by someone else")
		}

		xcontext.Logger(ctx).Errorf("Cannot advance waste log: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AdvanceWasteLogResponse{Status: string(next)}, nil
}

// GetTrace renders the public journey of a waste log. It only needs the
// opaque trace token, no authentication.
func (d *wasteLogDomain) GetTrace(
	ctx context.Context, req *model.GetWasteTraceRequest,
) (*model.GetWasteTraceResponse, error) {
	if req.TraceToken == "" {
		return nil, errorx.New(errorx.MissingRequiredField, "Require a trace token")
	}

	log, err := d.wasteLogRepo.GetByTraceToken(ctx, req.TraceToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found waste log")
		}

		xcontext.Logger(ctx).Errorf("Cannot get waste log by trace token: %v", err)
		return nil, errorx.Unknown
	}

	current := trace.Index(log.Status)
	stages := []model.TraceStage{}
	for i, stage := range trace.Stages {
		stages = append(stages, model.TraceStage{
			Name:    string(stage),
			Done:    i <= current,
			Current: i == current,
		})
	}

	return &model.GetWasteTraceResponse{
		WasteLog: convertWasteLog(log),
		Stages:   stages,
	}, nil
}

func (d *wasteLogDomain) GetMyWasteLogs(
	ctx context.Context, req *model.GetMyWasteLogsRequest,
) (*model.GetMyWasteLogsResponse, error) {
	limit, err := checkLimit(ctx, req.Limit)
	if err != nil {
		return nil, err
	}

	logs, err := d.wasteLogRepo.GetListByUserID(ctx, xcontext.RequestUserID(ctx), req.Offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get waste logs: %v", err)
		return nil, errorx.Unknown
	}

	clientLogs := []model.WasteLog{}
	for i := range logs {
		clientLogs = append(clientLogs, convertWasteLog(&logs[i]))
	}

	return &model.GetMyWasteLogsResponse{WasteLogs: clientLogs}, nil
}
