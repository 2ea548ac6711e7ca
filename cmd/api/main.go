package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"corus-backend/internal/activities"
	"corus-backend/internal/admin"
	"corus-backend/internal/auth"
	"corus-backend/internal/blogs"
	"corus-backend/internal/cache"
	"corus-backend/internal/casestudies"
	"corus-backend/internal/clients"
	"corus-backend/internal/config"
	"corus-backend/internal/consent"
	"corus-backend/internal/consultations"
	"corus-backend/internal/content"
	"corus-backend/internal/dashboard"
	"corus-backend/internal/db"
	"corus-backend/internal/middleware"
	"corus-backend/internal/newsletter"
	"corus-backend/internal/notifications"
	"corus-backend/internal/projects"
	"corus-backend/internal/schedules"
	"corus-backend/internal/stats"
	"corus-backend/internal/team"
	"corus-backend/internal/validation"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if cfg.Env == "development" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		cacheStore = redisCache
	}

	jwtManager := &auth.Manager{
		Secret:     []byte(cfg.JWTSecret),
		AccessTTL:  time.Duration(cfg.AccessTTLMinutes) * time.Minute,
		RefreshTTL: time.Duration(cfg.RefreshTTLMinutes) * time.Minute,
		Issuer:     "corus-backend",
	}

	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoNotifyEmail, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	activitiesRepo := activities.NewRepository(cols.Activities)
	activitiesService := activities.NewService(activitiesRepo, cfg.Timezone, logger)
	activitiesHandler := activities.NewHandler(activitiesService, logger)

	contentService := content.NewService(
		content.NewMenuRepository(cols.Menus),
		content.NewSolutionRepository(cols.Solutions),
		content.NewIndustryRepository(cols.Industries),
		cacheStore, cacheTTL, cfg.Timezone,
	)
	contentHandler := content.NewHandler(contentService, val, logger)

	blogsRepo := blogs.NewRepository(cols.Blogs)
	blogsService := blogs.NewService(blogsRepo, cfg.Timezone)
	blogsHandler := blogs.NewHandler(blogsService, val, logger)

	caseStudiesRepo := casestudies.NewRepository(cols.CaseStudies)
	caseStudiesService := casestudies.NewService(caseStudiesRepo, cfg.Timezone)
	caseStudiesHandler := casestudies.NewHandler(caseStudiesService, val, logger)

	var consultationNotifier consultations.Notifier
	var scheduleNotifier schedules.Notifier
	if mailer != nil {
		consultationNotifier = mailer
		scheduleNotifier = mailer
	}

	consultationsRepo := consultations.NewRepository(cols.Consultations)
	consultationsService := consultations.NewService(consultationsRepo, cfg.Timezone, consultationNotifier, activitiesService, logger)
	consultationsHandler := consultations.NewHandler(consultationsService, val, logger)

	schedulesRepo := schedules.NewRepository(cols.Schedules)
	schedulesService := schedules.NewService(schedulesRepo, cfg.Timezone, scheduleNotifier, activitiesService, logger)
	schedulesHandler := schedules.NewHandler(schedulesService, val, logger)

	newsletterRepo := newsletter.NewRepository(cols.Subscribers)
	newsletterService := newsletter.NewService(newsletterRepo, cfg.Timezone)
	newsletterHandler := newsletter.NewHandler(newsletterService, val, logger)

	consentRepo := consent.NewRepository(cols.Consents)
	consentService := consent.NewService(consentRepo, cfg.Timezone)
	consentHandler := consent.NewHandler(consentService, val, logger)

	statsRepo := stats.NewRepository(cols.Stats)
	statsService := stats.NewService(statsRepo, cfg.Timezone)
	statsHandler := stats.NewHandler(statsService, val, logger)

	projectsRepo := projects.NewRepository(cols.Projects)
	projectsService := projects.NewService(projectsRepo, cfg.Timezone)
	projectsHandler := projects.NewHandler(projectsService, val, logger)

	clientsRepo := clients.NewRepository(cols.Clients)
	clientsService := clients.NewService(clientsRepo, cfg.Timezone)
	clientsHandler := clients.NewHandler(clientsService, val, logger)

	teamRepo := team.NewRepository(cols.Team)
	teamService := team.NewService(teamRepo, cfg.Timezone)
	teamHandler := team.NewHandler(teamService, val, logger)

	dashboardService := dashboard.NewService(clientsRepo, projectsRepo, consultationsRepo, schedulesRepo, activitiesRepo, cfg.Timezone)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)

	adminHandler := admin.NewHandler(admin.NewUserRepository(cols.Users), jwtManager, val, logger, cfg.CookieSecure)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	formsLimiter := middleware.NewRateLimiter(cfg.RateLimitForms, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	newsletterLimiter := middleware.NewRateLimiter(cfg.RateLimitNewsletter, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	r.Route("/api", func(api chi.Router) {
		api.Get("/menus", contentHandler.ListMenus)
		api.Get("/menus/solutions/items", contentHandler.ListSolutions)
		api.Get("/menus/solutions/items/{slug}", contentHandler.GetSolutionBySlug)
		api.Get("/menus/industries/items", contentHandler.ListIndustries)
		api.Get("/menus/industries/items/{slug}", contentHandler.GetIndustryBySlug)
		api.Get("/menus/{slug}", contentHandler.GetMenuBySlug)

		api.Get("/blogs", blogsHandler.PublicList)
		api.Get("/blogs/{slug}", blogsHandler.PublicGetBySlug)
		api.Get("/case-studies", caseStudiesHandler.PublicList)
		api.Get("/case-studies/{slug}", caseStudiesHandler.PublicGetBySlug)
		api.Get("/stats", statsHandler.PublicGet)

		api.With(formsLimiter.Middleware).Post("/consultations", consultationsHandler.PublicCreate)
		api.With(formsLimiter.Middleware).Post("/schedules", schedulesHandler.PublicCreate)
		api.Get("/schedules/slots", schedulesHandler.PublicSlots)
		api.With(newsletterLimiter.Middleware).Post("/newsletter/subscribe", newsletterHandler.Subscribe)
		api.Post("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)
		api.With(formsLimiter.Middleware).Post("/consent", consentHandler.Record)

		api.Route("/admin", func(adm chi.Router) {
			adm.Post("/login", adminHandler.Login)
			adm.Post("/refresh", adminHandler.Refresh)
			adm.Post("/logout", adminHandler.Logout)

			// Important (chi): middlewares must be attached before defining routes.
			// Login/refresh/logout stay public, everything else goes through auth.
			adm.Group(func(protected chi.Router) {
				protected.Use(middleware.AdminAuth(jwtManager))

				protected.Get("/me", adminHandler.Me)

				protected.Get("/dashboard/summary", dashboardHandler.AdminSummary)
				protected.Get("/financial", dashboardHandler.AdminFinancial)

				protected.Get("/menus", contentHandler.ListMenus)
				protected.Post("/menus", contentHandler.CreateMenu)
				protected.Put("/menus/{id}", contentHandler.UpdateMenu)
				protected.Delete("/menus/{id}", contentHandler.DeleteMenu)
				protected.Get("/solutions", contentHandler.ListSolutions)
				protected.Post("/solutions", contentHandler.CreateSolution)
				protected.Put("/solutions/{id}", contentHandler.UpdateSolution)
				protected.Delete("/solutions/{id}", contentHandler.DeleteSolution)
				protected.Get("/industries", contentHandler.ListIndustries)
				protected.Post("/industries", contentHandler.CreateIndustry)
				protected.Put("/industries/{id}", contentHandler.UpdateIndustry)
				protected.Delete("/industries/{id}", contentHandler.DeleteIndustry)

				protected.Get("/blogs", blogsHandler.AdminList)
				protected.Post("/blogs", blogsHandler.AdminCreate)
				protected.Put("/blogs/{id}", blogsHandler.AdminUpdate)
				protected.Delete("/blogs/{id}", blogsHandler.AdminDelete)

				protected.Get("/case-studies", caseStudiesHandler.AdminList)
				protected.Post("/case-studies", caseStudiesHandler.AdminCreate)
				protected.Put("/case-studies/{id}", caseStudiesHandler.AdminUpdate)
				protected.Delete("/case-studies/{id}", caseStudiesHandler.AdminDelete)

				protected.Get("/projects", projectsHandler.AdminList)
				protected.Get("/projects/{id}", projectsHandler.AdminGet)
				protected.Post("/projects", projectsHandler.AdminCreate)
				protected.Put("/projects/{id}", projectsHandler.AdminUpdate)
				protected.Delete("/projects/{id}", projectsHandler.AdminDelete)

				protected.Get("/clients", clientsHandler.AdminList)
				protected.Get("/clients/{id}", clientsHandler.AdminGet)
				protected.Post("/clients", clientsHandler.AdminCreate)
				protected.Put("/clients/{id}", clientsHandler.AdminUpdate)
				protected.Delete("/clients/{id}", clientsHandler.AdminDelete)

				protected.Get("/team", teamHandler.AdminList)
				protected.Post("/team", teamHandler.AdminCreate)
				protected.Put("/team/{id}", teamHandler.AdminUpdate)
				protected.Delete("/team/{id}", teamHandler.AdminDelete)

				protected.Get("/consultations", consultationsHandler.AdminList)
				protected.Patch("/consultations/{id}/status", consultationsHandler.AdminUpdateStatus)
				protected.Delete("/consultations/{id}", consultationsHandler.AdminDelete)

				protected.Get("/schedules", schedulesHandler.AdminList)
				protected.Patch("/schedules/{id}", schedulesHandler.AdminUpdate)
				protected.Delete("/schedules/{id}", schedulesHandler.AdminDelete)

				protected.Get("/newsletter/subscribers", newsletterHandler.AdminList)
				protected.Get("/newsletter/subscribers/stats", newsletterHandler.AdminStats)
				protected.Delete("/newsletter/subscribers/{id}", newsletterHandler.AdminDelete)

				protected.Get("/consent/stats", consentHandler.AdminStats)
				protected.Get("/consent/records", consentHandler.AdminList)
				protected.Delete("/consent/records/{id}", consentHandler.AdminDelete)

				protected.Put("/stats/update", statsHandler.AdminUpdate)
				protected.Post("/stats/simulate-order", statsHandler.AdminSimulateOrder)

				protected.Get("/activities", activitiesHandler.AdminList)
				protected.Get("/activities/recent", activitiesHandler.AdminRecent)
				protected.Get("/activities/unread/count", activitiesHandler.AdminUnreadCount)
				protected.Put("/activities/{id}/read", activitiesHandler.AdminMarkRead)
				protected.Put("/activities/read-all", activitiesHandler.AdminMarkAllRead)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
