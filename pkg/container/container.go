package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"foodee-backend/internal/config"
	infraCache "foodee-backend/internal/infrastructure/cache"
	"foodee-backend/internal/infrastructure/database"
	"foodee-backend/internal/infrastructure/email"
	"foodee-backend/internal/infrastructure/events"
	"foodee-backend/internal/infrastructure/llm"
	"foodee-backend/internal/infrastructure/queue"
	"foodee-backend/internal/infrastructure/storage"
	"foodee-backend/pkg/cache"
	pkgdb "foodee-backend/pkg/database"
	"foodee-backend/pkg/jwt"
	"foodee-backend/pkg/logger"

	"foodee-backend/internal/domains/booking"
	bookingHandler "foodee-backend/internal/domains/booking/handler"
	bookingRepo "foodee-backend/internal/domains/booking/repository"
	bookingService "foodee-backend/internal/domains/booking/service"
	cartHandler "foodee-backend/internal/domains/cart/handler"
	cartRepo "foodee-backend/internal/domains/cart/repository"
	cartService "foodee-backend/internal/domains/cart/service"
	catalogHandler "foodee-backend/internal/domains/catalog/handler"
	catalogRepo "foodee-backend/internal/domains/catalog/repository"
	catalogService "foodee-backend/internal/domains/catalog/service"
	chatbotHandler "foodee-backend/internal/domains/chatbot/handler"
	chatbotService "foodee-backend/internal/domains/chatbot/service"
	newsHandler "foodee-backend/internal/domains/news/handler"
	newsRepo "foodee-backend/internal/domains/news/repository"
	newsService "foodee-backend/internal/domains/news/service"
	orderHandler "foodee-backend/internal/domains/order/handler"
	orderRepo "foodee-backend/internal/domains/order/repository"
	orderService "foodee-backend/internal/domains/order/service"
	"foodee-backend/internal/domains/payment/gateway/vnpay"
	paymentHandler "foodee-backend/internal/domains/payment/handler"
	paymentService "foodee-backend/internal/domains/payment/service"
	reviewHandler "foodee-backend/internal/domains/review/handler"
	reviewRepo "foodee-backend/internal/domains/review/repository"
	reviewService "foodee-backend/internal/domains/review/service"
	statsHandler "foodee-backend/internal/domains/statistics/handler"
	statsRepo "foodee-backend/internal/domains/statistics/repository"
	statsService "foodee-backend/internal/domains/statistics/service"
	"foodee-backend/internal/domains/user"
	userHandler "foodee-backend/internal/domains/user/handler"
	userRepo "foodee-backend/internal/domains/user/repository"
	userService "foodee-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container giữ toàn bộ dependency graph của API và worker
// Thứ tự khởi tạo: Config → Infrastructure → Repositories → Services → Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	RedisCache  *infraCache.RedisCache // nil khi Redis không kết nối được
	TxManager   pkgdb.TxManager
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client // nil khi QUEUE_ENABLED=false
	Mailer      email.EmailService
	Events      events.OrderEventPublisher
	Storage     *storage.MinIOStorage // nil khi MinIO tắt hoặc lỗi
	Images      *storage.ImageProcessor
	LLM         *llm.Client
	VNPay       *vnpay.Client // nil khi chưa cấu hình VNPay

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo        user.Repository
	ResetTokenRepo  user.ResetTokenRepository
	ProductRepo     catalogRepo.ProductRepository
	ProductTypeRepo catalogRepo.ProductTypeRepository
	CategoryRepo    catalogRepo.CategoryRepository
	CartRepo        cartRepo.Repository
	OrderRepo       orderRepo.OrderRepository
	BookingRepo     booking.Repository
	ReviewRepo      reviewRepo.ReviewRepository
	NewsRepo        newsRepo.NewsRepository
	StatsRepo       statsRepo.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	UserService        user.Service
	ProductService     catalogService.ProductService
	ProductTypeService catalogService.ProductTypeService
	CategoryService    catalogService.CategoryService
	CartService        cartService.ServiceInterface
	OrderService       orderService.ServiceInterface
	PaymentService     paymentService.ServiceInterface
	BookingService     booking.Service
	ReviewService      reviewService.ServiceInterface
	NewsService        newsService.NewsService
	StatsService       statsService.ServiceInterface
	ChatbotService     chatbotService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	UserHandler        *userHandler.UserHandler
	ProductHandler     *catalogHandler.ProductHandler
	ProductTypeHandler *catalogHandler.ProductTypeHandler
	CategoryHandler    *catalogHandler.CategoryHandler
	CartHandler        *cartHandler.Handler
	OrderHandler       *orderHandler.Handler
	PaymentHandler     *paymentHandler.Handler
	BookingHandler     *bookingHandler.BookingHandler
	ReviewHandler      *reviewHandler.ReviewHandler
	NewsHandler        *newsHandler.NewsHandler
	StatsHandler       *statsHandler.StatisticsHandler
	ChatbotHandler     *chatbotHandler.ChatbotHandler
}

// NewContainer load config từ env rồi build toàn bộ dependency graph
func NewContainer() (*Container, error) {
	logger.Info("Initializing DI container", nil)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	c.DB = db
	c.TxManager = pkgdb.NewTxManager(db.Pool)

	// ========================================
	// STEP 2: INFRASTRUCTURE
	// ========================================
	c.initCache(ctx)
	c.initInfrastructure(ctx)

	// ========================================
	// STEP 3-5: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("DI container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})
	return c, nil
}

// initCache: Redis lỗi thì fallback MemoryCache, không chặn khởi động
func (c *Container) initCache(ctx context.Context) {
	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := rc.Connect(ctx); err != nil {
		logger.Warn("Redis unavailable, using in-memory cache", map[string]interface{}{
			"host":  c.Config.Redis.Host,
			"error": err.Error(),
		})
		_ = rc.Close()
		c.Cache = cache.NewMemoryCache()
		return
	}
	c.RedisCache = rc
	c.Cache = rc
}

func (c *Container) initInfrastructure(ctx context.Context) {
	cfg := c.Config

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	c.Events = events.NewOrderEventPublisher(cfg.Kafka)
	c.Images = storage.NewImageProcessor()
	c.LLM = llm.NewClient(cfg.Chatbot)

	// Mail: đẩy qua asynq nếu bật queue, ngược lại gửi SMTP trực tiếp
	if cfg.Queue.Enabled {
		c.AsynqClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
		c.Mailer = queue.NewQueuedEmailService(c.AsynqClient)
	} else {
		c.Mailer = email.NewSMTPEmailService(cfg.Email)
	}

	if cfg.MinIO.Enabled {
		st, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warn("MinIO unavailable, image upload disabled", map[string]interface{}{"error": err.Error()})
		} else {
			c.Storage = st
		}
	}

	if cfg.VNPay.TmnCode != "" && cfg.VNPay.HashSecret != "" {
		vnpCfg := vnpay.NewConfig(cfg.VNPay.TmnCode, cfg.VNPay.HashSecret, cfg.VNPay.PayURL, cfg.VNPay.ReturnURL)
		vnpCfg.Location = cfg.App.Location()
		client, err := vnpay.NewClient(vnpCfg)
		if err != nil {
			logger.Warn("VNPay disabled", map[string]interface{}{"error": err.Error()})
		} else {
			c.VNPay = client
		}
	} else {
		logger.Warn("VNPay credentials not configured, online payment disabled", nil)
	}
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.ResetTokenRepo = userRepo.NewResetTokenRepository(pool)
	c.ProductRepo = catalogRepo.NewProductRepository(pool)
	c.ProductTypeRepo = catalogRepo.NewProductTypeRepository(pool)
	c.CategoryRepo = catalogRepo.NewCategoryRepository(pool)
	c.CartRepo = cartRepo.NewPostgresRepository(pool)
	c.OrderRepo = orderRepo.NewPostgresRepository(pool)
	c.BookingRepo = bookingRepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
	c.NewsRepo = newsRepo.NewPostgresRepository(pool)
	c.StatsRepo = statsRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	cfg := c.Config
	loc := cfg.App.Location()

	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.ResetTokenRepo,
		c.TxManager,
		c.JWTManager,
		c.Mailer,
		cfg.App.FrontendURL,
	)

	// interface nhận nil thật, tránh typed-nil *MinIOStorage
	var images catalogService.ImageStorage
	if c.Storage != nil {
		images = c.Storage
	}
	c.ProductService = catalogService.NewProductService(
		c.ProductRepo,
		c.ProductTypeRepo,
		c.CategoryRepo,
		c.TxManager,
		c.Cache,
		images,
		c.Images,
	)
	c.ProductTypeService = catalogService.NewProductTypeService(c.ProductTypeRepo, c.ProductRepo, c.Cache)
	c.CategoryService = catalogService.NewCategoryService(c.CategoryRepo, c.Cache)

	c.CartService = cartService.NewCartService(c.CartRepo, c.ProductRepo, c.TxManager)
	c.OrderService = orderService.NewOrderService(
		c.OrderRepo,
		c.CartRepo,
		c.ProductRepo,
		c.UserRepo,
		c.TxManager,
		c.Events,
	)

	var gateway paymentService.Gateway
	if c.VNPay != nil {
		gateway = c.VNPay
	}
	c.PaymentService = paymentService.NewPaymentService(
		c.OrderRepo,
		gateway,
		c.TxManager,
		c.Events,
		cfg.VNPay.VerifyCallback,
	)

	c.BookingService = bookingService.NewBookingService(c.BookingRepo, c.TxManager, loc)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.OrderRepo, c.ProductRepo)
	c.NewsService = newsService.NewNewsService(c.NewsRepo, c.Cache)
	c.StatsService = statsService.NewStatisticsService(c.StatsRepo, loc)
	c.ChatbotService = chatbotService.NewChatbotService(c.LLM, c.ProductRepo, c.ProductTypeRepo, c.CategoryRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.ProductHandler = catalogHandler.NewProductHandler(c.ProductService)
	c.ProductTypeHandler = catalogHandler.NewProductTypeHandler(c.ProductTypeService)
	c.CategoryHandler = catalogHandler.NewCategoryHandler(c.CategoryService)
	c.CartHandler = cartHandler.NewHandler(c.CartService)
	c.OrderHandler = orderHandler.NewHandler(c.OrderService, c.Config.App.Location())
	c.PaymentHandler = paymentHandler.NewHandler(c.PaymentService)
	c.BookingHandler = bookingHandler.NewBookingHandler(c.BookingService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.NewsHandler = newsHandler.NewNewsHandler(c.NewsService)
	c.StatsHandler = statsHandler.NewStatisticsHandler(c.StatsService)
	c.ChatbotHandler = chatbotHandler.NewChatbotHandler(c.ChatbotService)
}

// Cleanup đóng kết nối khi shutdown
func (c *Container) Cleanup() {
	if c.Events != nil {
		if err := c.Events.Close(); err != nil {
			logger.Error("Failed to close event publisher", err)
		}
	}
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("Failed to close asynq client", err)
		}
	}
	if c.RedisCache != nil {
		if err := c.RedisCache.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("Container cleanup completed", nil)
}
