package api

import (
	"github.com/redis/go-redis/v9"

	"planescheduler/flightline/internal/common"
	"planescheduler/flightline/internal/db"
	"planescheduler/flightline/internal/db/repositories"
	"planescheduler/flightline/internal/metrics"
	"planescheduler/flightline/internal/services"
)

type Repositories struct {
	Reservations  *repositories.ReservationRepository
	Aircraft      *repositories.AircraftRepository
	Issues        *repositories.IssueRepository
	Users         *repositories.UserRepository
	Subscriptions *repositories.SubscriptionRepository
}

type Services struct {
	Cache         *common.CacheService
	Session       *common.SessionService
	Reservations  *services.ReservationService
	Aircraft      *services.AircraftService
	Issues        *services.IssueService
	Users         *services.UserService
	Subscriptions *services.SubscriptionService
	UsageReport   *services.UsageReportService
	Notifications *services.NotificationService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	Redis    *redis.Client
}

func InitDependencies() (*Dependencies, error) {

	repos := &Repositories{
		Reservations:  repositories.NewReservationRepository(db.DB),
		Aircraft:      repositories.NewAircraftRepository(db.PgDB),
		Issues:        repositories.NewIssueRepository(db.PgDB),
		Users:         repositories.NewUserRepository(db.PgDB),
		Subscriptions: repositories.NewSubscriptionRepository(db.PgDB),
	}

	reg := metrics.NewMetricsRegistry()
	cacheSvc := common.NewCacheService(300, 600)
	redisClient := common.NewRedisClient()
	sessionSvc := common.NewSessionService(redisClient)

	aircraftSvc := services.NewAircraftService(repos.Aircraft, cacheSvc)
	notifSvc := services.NewNotificationService(reg)
	reservationSvc := services.NewReservationService(
		repos.Reservations, aircraftSvc, repos.Subscriptions, notifSvc, reg)

	svcs := &Services{
		Cache:         cacheSvc,
		Session:       sessionSvc,
		Reservations:  reservationSvc,
		Aircraft:      aircraftSvc,
		Issues:        services.NewIssueService(repos.Issues, aircraftSvc, reg),
		Users:         services.NewUserService(repos.Users),
		Subscriptions: services.NewSubscriptionService(repos.Subscriptions, aircraftSvc),
		UsageReport:   services.NewUsageReportService(repos.Reservations),
		Notifications: notifSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  reg,
		Redis:    redisClient,
	}, nil
}
