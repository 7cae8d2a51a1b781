package main

import (
	"context"
	"net/http"

	"github.com/templetoayurveda/backend/config"
	"github.com/templetoayurveda/backend/internal/domain"
	"github.com/templetoayurveda/backend/internal/domain/reward"
	"github.com/templetoayurveda/backend/internal/repository"
	"github.com/templetoayurveda/backend/pkg/api/gemini"
	"github.com/templetoayurveda/backend/pkg/logger"
	"github.com/templetoayurveda/backend/pkg/router"
	"github.com/templetoayurveda/backend/pkg/storage"
	"github.com/templetoayurveda/backend/pkg/xcontext"
	"github.com/templetoayurveda/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	userRepo             repository.UserRepository
	refreshTokenRepo     repository.RefreshTokenRepository
	pickupRepo           repository.PickupRequestRepository
	volunteerRequestRepo repository.VolunteerRequestRepository
	volunteerDutyRepo    repository.VolunteerDutyRepository
	wasteLogRepo         repository.WasteLogRepository
	serviceRequestRepo   repository.ServiceRequestRepository
	productRepo          repository.ProductRepository

	ledger *reward.Ledger

	authDomain           domain.AuthDomain
	userDomain           domain.UserDomain
	pickupDomain         domain.PickupDomain
	volunteerDomain      domain.VolunteerDomain
	wasteLogDomain       domain.WasteLogDomain
	serviceRequestDomain domain.ServiceRequestDomain
	statisticDomain      domain.StatisticDomain
	shopDomain           domain.ShopDomain
	aiDomain             domain.AIDomain
	fileDomain           domain.FileDomain

	router *router.Router

	db             *gorm.DB
	redisClient    xredis.Client
	storage        storage.Storage
	geminiEndpoint gemini.IEndpoint
	logger         logger.Logger

	configs *config.Configs

	server *http.Server
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(0)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedis(ctx context.Context) {
	var err error
	s.redisClient, err = xredis.NewClient(ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadEndpoint() {
	s.geminiEndpoint = gemini.New(s.configs.Gemini)
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
	s.pickupRepo = repository.NewPickupRequestRepository()
	s.volunteerRequestRepo = repository.NewVolunteerRequestRepository()
	s.volunteerDutyRepo = repository.NewVolunteerDutyRepository()
	s.wasteLogRepo = repository.NewWasteLogRepository()
	s.serviceRequestRepo = repository.NewServiceRequestRepository()
	s.productRepo = repository.NewProductRepository()
}

func (s *srv) loadDomains() {
	s.ledger = reward.NewLedger(s.userRepo)

	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo)
	s.pickupDomain = domain.NewPickupDomain(s.pickupRepo, s.userRepo, s.ledger, s.redisClient)
	s.volunteerDomain = domain.NewVolunteerDomain(
		s.volunteerRequestRepo, s.volunteerDutyRepo, s.userRepo, s.ledger, s.redisClient)
	s.wasteLogDomain = domain.NewWasteLogDomain(s.wasteLogRepo, s.userRepo, s.ledger, s.redisClient)
	s.serviceRequestDomain = domain.NewServiceRequestDomain(s.serviceRequestRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.redisClient)
	s.shopDomain = domain.NewShopDomain(s.productRepo, s.userRepo, s.storage, s.geminiEndpoint)
	s.aiDomain = domain.NewAIDomain(s.geminiEndpoint)
	s.fileDomain = domain.NewFileDomain(s.storage)
}

func (s *srv) newContext() context.Context {
	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, *s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	if s.db != nil {
		ctx = xcontext.WithDB(ctx, s.db)
	}

	return ctx
}
