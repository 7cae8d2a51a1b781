package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/templetoayurveda/backend/internal/middleware"
	"github.com/templetoayurveda/backend/pkg/prometheus"
	"github.com/templetoayurveda/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	server.loadConfig()
	server.loadLogger()
	server.loadEndpoint()
	server.loadDatabase()
	server.loadRedis(server.newContext())
	server.loadStorage()
	server.loadRepos()
	server.loadDomains()
	server.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	log.Printf("server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.AddHandler("/metrics", prometheus.NewHandler())
	s.router.Before(middleware.WithStartTime())
	s.router.Before(middleware.AllowCors())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	// Auth API
	authRouter := s.router.Branch()
	{
		router.POST(authRouter, "/register", s.authDomain.Register)
		router.POST(authRouter, "/login", s.authDomain.Login)
		router.POST(authRouter, "/refresh", s.authDomain.Refresh)
	}

	// These following APIs need authentication with an Access Token.
	authVerifier := middleware.NewAuthVerifier().WithAccessToken()
	onlyTokenAuthRouter := s.router.Branch()
	onlyTokenAuthRouter.Before(authVerifier.Middleware())
	{
		// User API
		router.GET(onlyTokenAuthRouter, "/getMe", s.userDomain.GetMe)
		router.GET(onlyTokenAuthRouter, "/getUser", s.userDomain.GetUser)
		router.GET(onlyTokenAuthRouter, "/getDryingUnits", s.userDomain.GetDryingUnits)

		// Pickup API
		router.POST(onlyTokenAuthRouter, "/createPickup", s.pickupDomain.Create)
		router.POST(onlyTokenAuthRouter, "/acceptPickup", s.pickupDomain.Accept)
		router.POST(onlyTokenAuthRouter, "/rejectPickup", s.pickupDomain.Reject)
		router.POST(onlyTokenAuthRouter, "/loadPickup", s.pickupDomain.Load)
		router.POST(onlyTokenAuthRouter, "/completePickup", s.pickupDomain.Complete)
		router.GET(onlyTokenAuthRouter, "/getPickup", s.pickupDomain.Get)
		router.GET(onlyTokenAuthRouter, "/getListPickup", s.pickupDomain.GetList)
		router.GET(onlyTokenAuthRouter, "/getMyPickups", s.pickupDomain.GetMyPickups)

		// Volunteer API
		router.POST(onlyTokenAuthRouter, "/applyVolunteer", s.volunteerDomain.Apply)
		router.POST(onlyTokenAuthRouter, "/reviewVolunteerRequest", s.volunteerDomain.ReviewRequest)
		router.GET(onlyTokenAuthRouter, "/getVolunteerRequests", s.volunteerDomain.GetRequests)
		router.POST(onlyTokenAuthRouter, "/assignDuty", s.volunteerDomain.AssignDuty)
		router.POST(onlyTokenAuthRouter, "/requestDutyCompletion", s.volunteerDomain.RequestDutyCompletion)
		router.POST(onlyTokenAuthRouter, "/reviewDuty", s.volunteerDomain.ReviewDuty)
		router.GET(onlyTokenAuthRouter, "/getMyDuties", s.volunteerDomain.GetMyDuties)
		router.GET(onlyTokenAuthRouter, "/getAssignedDuties", s.volunteerDomain.GetAssignedDuties)

		// Waste Log API
		router.POST(onlyTokenAuthRouter, "/createWasteLog", s.wasteLogDomain.Create)
		router.POST(onlyTokenAuthRouter, "/advanceWasteLog", s.wasteLogDomain.Advance)
		router.GET(onlyTokenAuthRouter, "/getMyWasteLogs", s.wasteLogDomain.GetMyWasteLogs)

		// Service Request API
		router.POST(onlyTokenAuthRouter, "/createServiceRequest", s.serviceRequestDomain.Create)
		router.POST(onlyTokenAuthRouter, "/resolveServiceRequest", s.serviceRequestDomain.Resolve)
		router.GET(onlyTokenAuthRouter, "/getListServiceRequest", s.serviceRequestDomain.GetList)

		// Statistic API
		router.GET(onlyTokenAuthRouter, "/getMyRank", s.statisticDomain.GetMyRank)

		// AI API
		router.POST(onlyTokenAuthRouter, "/chat", s.aiDomain.Chat)
		router.POST(onlyTokenAuthRouter, "/classifyWaste", s.aiDomain.ClassifyWaste)
		router.POST(onlyTokenAuthRouter, "/route", s.aiDomain.Route)

		// Image API
		router.POST(onlyTokenAuthRouter, "/uploadImage", s.fileDomain.UploadImage)
	}

	// These following APIs are restricted to admin accounts.
	adminRouter := s.router.Branch()
	adminRouter.Before(authVerifier.Middleware())
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.POST(adminRouter, "/createProduct", s.shopDomain.CreateProduct)
		router.POST(adminRouter, "/updateProduct", s.shopDomain.UpdateProduct)
		router.POST(adminRouter, "/deleteProduct", s.shopDomain.DeleteProduct)
	}

	// Public API.
	router.GET(s.router, "/getWasteTrace", s.wasteLogDomain.GetTrace)
	router.GET(s.router, "/getRankings", s.statisticDomain.GetRankings)
	router.GET(s.router, "/getProduct", s.shopDomain.GetProduct)
	router.GET(s.router, "/getListProduct", s.shopDomain.GetProducts)
}
