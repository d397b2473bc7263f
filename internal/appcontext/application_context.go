package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/cart"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/config"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/notification"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/db"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/redis_decorator"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/infra/repository/redis_repo"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
	cache_redis "github.com/RoyceAzure/lab/rj_redis/pkg/cache/redis"
	"github.com/RoyceAzure/lab/rj_redis/pkg/redis_client"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf     *config.Config
	Logger *zerolog.Logger

	DbConn      *gorm.DB
	DbDao       *db.DbDao
	RedisClient *redis.Client

	ProductRepo db.IProductRepository
	CouponRepo  db.ICouponRepository
	OrderRepo   db.IOrderRepository
	ReviewRepo  db.IReviewRepository
	BannerRepo  db.IBannerRepository

	CartPersister cart.Persister
	Dispatcher    *notification.Dispatcher

	ProductService  service.IProductService
	CartService     service.ICartService
	CouponService   service.ICouponService
	CheckoutService service.ICheckoutService
	OrderService    service.IOrderService
	ReviewService   service.IReviewService
	BannerService   service.IBannerService
	SessionService  service.ISessionService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}
	err = app.setUpRedis()
	if err != nil {
		return err
	}

	app.setUpRepos()
	app.setUpNotification()
	app.setUpServices()

	return nil
}

func (app *ApplicationContext) setUpLogger() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	app.Logger = &logger
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewDbDao(app.DbConn)
	if err := app.DbDao.InitMigrate(); err != nil {
		return err
	}
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpRedis() error {
	log.Printf("Start setup redis client")
	opts := []redis_client.Option{}
	if app.Cf.RedisPassword != "" {
		opts = append(opts, redis_client.WithPassword(app.Cf.RedisPassword))
	}
	client, err := redis_client.GetRedisClient(app.Cf.RedisAddr, opts...)
	if err != nil {
		return err
	}
	app.RedisClient = client
	log.Printf("Finish setup redis client")
	return nil
}

func (app *ApplicationContext) setUpRepos() {
	log.Printf("Start setup repositories")

	productCache := cache_redis.NewRedisCache(app.RedisClient, "product")
	app.ProductRepo = redis_decorator.NewCacheAsideProductRepo(db.NewProductRepo(app.DbDao), productCache)

	app.CouponRepo = db.NewCouponRepo(app.DbDao)
	app.OrderRepo = db.NewOrderRepo(app.DbDao)
	app.ReviewRepo = db.NewReviewRepo(app.DbDao)
	app.BannerRepo = db.NewBannerRepo(app.DbDao)

	app.CartPersister = redis_repo.NewCartSnapshotRepo(app.RedisClient)

	log.Printf("Finish setup repositories")
}

// setUpNotification email跟webhook都是設定了才啟用
// 兩個都沒設定dispatcher一樣能跑  只是下單後不會有任何通知
func (app *ApplicationContext) setUpNotification() {
	log.Printf("Start setup notification dispatcher")

	var notifiers []notification.Notifier
	if app.Cf.EmailAccount != "" && app.Cf.SmtpAuthKey != "" {
		notifiers = append(notifiers, notification.NewEmailNotifier(
			app.Cf.SenderName, app.Cf.EmailAccount, app.Cf.SmtpAuthKey, app.Cf.SmtpHost, app.Cf.SmtpPort))
	}
	if app.Cf.WhatsappWebhookURL != "" {
		notifiers = append(notifiers, notification.NewWebhookNotifier(app.Cf.WhatsappWebhookURL, app.Cf.WhatsappToken))
	}
	app.Dispatcher = notification.NewDispatcher(app.Logger, notifiers...)

	log.Printf("Finish setup notification dispatcher, %d notifier(s) enabled", len(notifiers))
}

func (app *ApplicationContext) setUpServices() {
	log.Printf("Start setup services")

	app.ProductService = service.NewProductService(app.ProductRepo)
	app.CartService = service.NewCartService(app.ProductRepo, app.CartPersister, app.Logger)
	app.CouponService = service.NewCouponService(app.CouponRepo)
	app.CheckoutService = service.NewCheckoutService(app.OrderRepo, app.CouponService, app.Dispatcher, app.Logger)
	app.OrderService = service.NewOrderService(app.OrderRepo)
	app.ReviewService = service.NewReviewService(app.ReviewRepo, app.ProductRepo)
	app.BannerService = service.NewBannerService(app.BannerRepo)
	app.SessionService = service.NewSessionService(app.Cf.AdminEmail, app.Cf.AdminPassword)

	log.Printf("Finish setup services")
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		if app.RedisClient != nil {
			log.Printf("Closing redis client...")
			if err := app.RedisClient.Close(); err != nil {
				//有錯誤不結束流程
				log.Printf("redis client shutdown error: %v", err)
			}
		}

		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			if sqlDB, err := app.DbConn.DB(); err == nil {
				sqlDB.Close()
			}
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
