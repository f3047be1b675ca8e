package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"marketplace_dev_v1_202601/internal/controller"
	"marketplace_dev_v1_202601/internal/middleware"
	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
	"marketplace_dev_v1_202601/internal/router"
	"marketplace_dev_v1_202601/internal/service"
	"marketplace_dev_v1_202601/internal/task"
	"marketplace_dev_v1_202601/pkg/config"
	"marketplace_dev_v1_202601/pkg/database"
	"marketplace_dev_v1_202601/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	// 2. 初始化日志
	if err := logger.Init(&logger.Config{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: "marketplace",
	}); err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	// 3. JWT 配置
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       cfg.JWT.SecretKey,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
		Issuer:          cfg.JWT.Issuer,
	})

	// 4. 初始化数据库
	db := initDatabase(cfg)

	// 5. 初始化依赖
	deps := initDependencies(db, cfg)

	// 6. 启动定时任务
	taskManager := initTasks(deps, cfg)
	defer taskManager.Stop()

	// 7. 初始化路由
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	router.InitRoutes(r,
		deps.Controllers.User,
		deps.Controllers.Seller,
		deps.Controllers.Shop,
		deps.Controllers.Product,
		deps.Controllers.Order,
		deps.Controllers.ReturnRefund,
		deps.Controllers.Balance,
		deps.Controllers.Notification,
		deps.Controllers.Upload,
	)

	// 8. 启动服务
	startServer(r, cfg)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User               repository.UserRepository
	Seller             repository.SellerRepository
	Shop               repository.ShopRepository
	BankAccount        repository.BankAccountRepository
	Category           repository.CategoryRepository
	Product            repository.ProductRepository
	Order              repository.OrderRepository
	ReturnRefund       repository.ReturnRefundRepository
	Balance            repository.SellerBalanceRepository
	Withdrawal         repository.SellerWithdrawalRepository
	Follow             repository.FollowRepository
	Notification       repository.NotificationRepository
	SellerNotification repository.SellerNotificationRepository
	ActivityLog        repository.ActivityLogRepository
	LedgerUow          *repository.LedgerUnitOfWork
	AccountUow         *repository.AccountUnitOfWork
	OrderUow           *repository.OrderUnitOfWork
}

// Services 服务集合
type Services struct {
	User         *service.UserService
	OTP          *service.OTPService
	Seller       *service.SellerService
	BankAccount  *service.BankAccountService
	Shop         *service.ShopService
	Product      *service.ProductService
	Order        *service.OrderService
	ReturnRefund *service.ReturnRefundService
	Balance      *service.BalanceService
	Follow       *service.FollowService
	Notification *service.NotificationService
	ActivityLog  *service.ActivityLogService
	Storage      *service.StorageService
}

// Controllers 控制器集合
type Controllers struct {
	User         *controller.UserController
	Seller       *controller.SellerController
	Shop         *controller.ShopController
	Product      *controller.ProductController
	Order        *controller.OrderController
	ReturnRefund *controller.ReturnRefundController
	Balance      *controller.BalanceController
	Notification *controller.NotificationController
	Upload       *controller.UploadController
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := database.InitDB(&cfg.DB,
		// 账号
		&model.SysUser{}, &model.Seller{}, &model.BankAccount{},
		// 店铺 & 商品
		&model.Shop{}, &model.Category{}, &model.Product{}, &model.Follow{},
		// 订单 & 售后
		&model.Order{}, &model.ReturnRefund{},
		// 余额 & 提现
		&model.SellerBalance{}, &model.SellerWithdrawal{},
		// 通知 & 日志
		&model.Notification{}, &model.SellerNotification{}, &model.ActivityLog{},
	)
	if err != nil {
		log.Fatalf("数据库初始化失败: %v", err)
	}
	return db
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB, cfg *config.Config) *Dependencies {
	// -------- Repo 层 --------
	repos := initRepositories(db)

	// -------- 基础服务 --------
	activitySvc := service.NewActivityLogService(repos.ActivityLog)
	notificationSvc := service.NewNotificationService(repos.Notification, repos.SellerNotification)
	storageSvc := initStorageService(cfg)

	// -------- 业务服务 --------
	services := &Services{
		Notification: notificationSvc,
		ActivityLog:  activitySvc,
		Storage:      storageSvc,
	}

	services.User = service.NewUserService(repos.User, activitySvc)
	services.OTP = service.NewOTPService(&cfg.SMS)
	services.Seller = service.NewSellerService(repos.Seller, repos.User, activitySvc)
	services.BankAccount = service.NewBankAccountService(repos.AccountUow, repos.BankAccount, repos.Seller, activitySvc)
	services.Shop = service.NewShopService(repos.AccountUow, repos.Shop, repos.Seller, repos.Follow, activitySvc)
	services.Product = service.NewProductService(repos.Product, repos.Category, repos.Shop, activitySvc)
	services.Order = service.NewOrderService(
		repos.OrderUow, repos.Order, repos.Product, repos.Shop, repos.Balance,
		repos.User, notificationSvc, activitySvc,
	)
	services.ReturnRefund = service.NewReturnRefundService(
		repos.ReturnRefund, repos.Order, repos.Balance, repos.Shop,
		notificationSvc, activitySvc,
	)
	services.Balance = service.NewBalanceService(
		repos.LedgerUow, repos.Balance, repos.Withdrawal, repos.Seller,
		notificationSvc, activitySvc,
	)
	services.Follow = service.NewFollowService(repos.Follow, repos.Shop, activitySvc)

	// -------- Controller 层 --------
	controllers := initControllers(services)

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:               repository.NewUserRepository(db),
		Seller:             repository.NewSellerRepository(db),
		Shop:               repository.NewShopRepository(db),
		BankAccount:        repository.NewBankAccountRepository(db),
		Category:           repository.NewCategoryRepository(db),
		Product:            repository.NewProductRepository(db),
		Order:              repository.NewOrderRepository(db),
		ReturnRefund:       repository.NewReturnRefundRepository(db),
		Balance:            repository.NewSellerBalanceRepository(db),
		Withdrawal:         repository.NewSellerWithdrawalRepository(db),
		Follow:             repository.NewFollowRepository(db),
		Notification:       repository.NewNotificationRepository(db),
		SellerNotification: repository.NewSellerNotificationRepository(db),
		ActivityLog:        repository.NewActivityLogRepository(db),
		LedgerUow:          repository.NewLedgerUnitOfWork(db),
		AccountUow:         repository.NewAccountUnitOfWork(db),
		OrderUow:           repository.NewOrderUnitOfWork(db),
	}
}

// initStorageService 初始化存储服务
func initStorageService(cfg *config.Config) *service.StorageService {
	storageSvc, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		zap.L().Warn("存储服务初始化失败，文件上传不可用", zap.Error(err))
		return nil
	}
	return storageSvc
}

// initControllers 初始化所有控制器
func initControllers(svc *Services) *Controllers {
	return &Controllers{
		User:         controller.NewUserController(svc.User, svc.OTP),
		Seller:       controller.NewSellerController(svc.Seller, svc.BankAccount),
		Shop:         controller.NewShopController(svc.Shop, svc.Seller, svc.Follow),
		Product:      controller.NewProductController(svc.Product, svc.Seller),
		Order:        controller.NewOrderController(svc.Order, svc.Seller),
		ReturnRefund: controller.NewReturnRefundController(svc.ReturnRefund),
		Balance:      controller.NewBalanceController(svc.Balance, svc.Seller),
		Notification: controller.NewNotificationController(svc.Notification, svc.Seller, svc.ActivityLog),
		Upload:       controller.NewUploadController(svc.Storage),
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies, cfg *config.Config) *task.TaskManager {
	tm := task.NewTaskManager(&task.TaskManagerDeps{
		OrderRepo:       deps.Repos.Order,
		BalanceRepo:     deps.Repos.Balance,
		ActivityLogRepo: deps.Repos.ActivityLog,
	}, &cfg.Task)
	tm.Start()
	return tm
}

// ==================== 服务启动 ====================

// startServer 启动服务，收到退出信号后优雅关停
func startServer(r *gin.Engine, cfg *config.Config) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		zap.L().Info("HTTP 服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP 服务启动失败", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("收到退出信号，正在关停")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("服务关停失败", zap.Error(err))
	}
	zap.L().Info("服务已退出")
}
