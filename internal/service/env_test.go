package service

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"marketplace_dev_v1_202601/internal/model"
	"marketplace_dev_v1_202601/internal/repository"
)

// ==================== 测试辅助 ====================

// setupServiceTestDB 建内存库并迁移全部业务表
func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(
		&model.SysUser{},
		&model.Seller{},
		&model.BankAccount{},
		&model.Shop{},
		&model.Category{},
		&model.Product{},
		&model.Follow{},
		&model.Order{},
		&model.ReturnRefund{},
		&model.SellerBalance{},
		&model.SellerWithdrawal{},
		&model.Notification{},
		&model.SellerNotification{},
		&model.ActivityLog{},
	); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

// testEnv 一套完整接线的服务，共享同一个内存库
type testEnv struct {
	db *gorm.DB

	userSvc         *UserService
	sellerSvc       *SellerService
	bankAccountSvc  *BankAccountService
	shopSvc         *ShopService
	productSvc      *ProductService
	orderSvc        *OrderService
	returnRefundSvc *ReturnRefundService
	balanceSvc      *BalanceService
	followSvc       *FollowService
	notificationSvc *NotificationService

	userRepo         repository.UserRepository
	sellerRepo       repository.SellerRepository
	shopRepo         repository.ShopRepository
	productRepo      repository.ProductRepository
	orderRepo        repository.OrderRepository
	balanceRepo      repository.SellerBalanceRepository
	withdrawalRepo   repository.SellerWithdrawalRepository
	returnRefundRepo repository.ReturnRefundRepository
	followRepo       repository.FollowRepository
}

// newTestEnv 按生产接线方式组装全部服务
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupServiceTestDB(t)

	userRepo := repository.NewUserRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	bankAccountRepo := repository.NewBankAccountRepository(db)
	shopRepo := repository.NewShopRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	followRepo := repository.NewFollowRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	returnRefundRepo := repository.NewReturnRefundRepository(db)
	balanceRepo := repository.NewSellerBalanceRepository(db)
	withdrawalRepo := repository.NewSellerWithdrawalRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	sellerNotificationRepo := repository.NewSellerNotificationRepository(db)
	activityLogRepo := repository.NewActivityLogRepository(db)

	accountUow := repository.NewAccountUnitOfWork(db)
	ledgerUow := repository.NewLedgerUnitOfWork(db)
	orderUow := repository.NewOrderUnitOfWork(db)

	activitySvc := NewActivityLogService(activityLogRepo)
	notificationSvc := NewNotificationService(notificationRepo, sellerNotificationRepo)

	return &testEnv{
		db: db,

		userSvc:        NewUserService(userRepo, activitySvc),
		sellerSvc:      NewSellerService(sellerRepo, userRepo, activitySvc),
		bankAccountSvc: NewBankAccountService(accountUow, bankAccountRepo, sellerRepo, activitySvc),
		shopSvc:        NewShopService(accountUow, shopRepo, sellerRepo, followRepo, activitySvc),
		productSvc:     NewProductService(productRepo, categoryRepo, shopRepo, activitySvc),
		orderSvc: NewOrderService(orderUow, orderRepo, productRepo, shopRepo,
			balanceRepo, userRepo, notificationSvc, activitySvc),
		returnRefundSvc: NewReturnRefundService(returnRefundRepo, orderRepo, balanceRepo,
			shopRepo, notificationSvc, activitySvc),
		balanceSvc: NewBalanceService(ledgerUow, balanceRepo, withdrawalRepo,
			sellerRepo, notificationSvc, activitySvc),
		followSvc:       NewFollowService(followRepo, shopRepo, activitySvc),
		notificationSvc: notificationSvc,

		userRepo:         userRepo,
		sellerRepo:       sellerRepo,
		shopRepo:         shopRepo,
		productRepo:      productRepo,
		orderRepo:        orderRepo,
		balanceRepo:      balanceRepo,
		withdrawalRepo:   withdrawalRepo,
		returnRefundRepo: returnRefundRepo,
		followRepo:       followRepo,
	}
}

// ==================== 夹具 ====================

// mustCreateUser 直接落库一个登录账号
func (e *testEnv) mustCreateUser(t *testing.T, username string, role model.UserRole) *model.SysUser {
	t.Helper()
	user := &model.SysUser{
		Username: username,
		Password: "hashed-password",
		Role:     role,
		Status:   model.UserStatusActive,
	}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}
	return user
}

// mustCreateSeller 直接落库一个卖家
func (e *testEnv) mustCreateSeller(t *testing.T, userID int64, contactNumber string) *model.Seller {
	t.Helper()
	seller := &model.Seller{
		UserID:        userID,
		FirstName:     "Juan",
		LastName:      "Dela Cruz",
		ContactNumber: contactNumber,
		IsActive:      model.Active,
	}
	if err := e.db.Create(seller).Error; err != nil {
		t.Fatalf("创建测试卖家失败: %v", err)
	}
	return seller
}

// mustCreateShop 直接落库一家店铺
func (e *testEnv) mustCreateShop(t *testing.T, sellerID int64, name string, active model.ActiveStatus) *model.Shop {
	t.Helper()
	shop := &model.Shop{
		SellerID: sellerID,
		Name:     name,
		IsActive: active,
	}
	if err := e.db.Create(shop).Error; err != nil {
		t.Fatalf("创建测试店铺失败: %v", err)
	}
	return shop
}

// mustCreateProduct 直接落库一件商品
func (e *testEnv) mustCreateProduct(t *testing.T, shopID int64, name string, price int64, quantity int) *model.Product {
	t.Helper()
	product := &model.Product{
		ShopID:   shopID,
		Name:     name,
		Slug:     fmt.Sprintf("%s-%d", name, shopID),
		Price:    price,
		Quantity: quantity,
		IsActive: model.Active,
	}
	if err := e.db.Create(product).Error; err != nil {
		t.Fatalf("创建测试商品失败: %v", err)
	}
	return product
}

// mustSeedMarketplace 一套标准夹具：卖家 + 启用店铺 + 两件商品
type marketplaceFixture struct {
	customer *model.SysUser
	seller   *model.Seller
	shop     *model.Shop
	productA *model.Product // 单价 50，库存 10
	productB *model.Product // 单价 80，库存 5
}

func (e *testEnv) mustSeedMarketplace(t *testing.T) *marketplaceFixture {
	t.Helper()
	customer := e.mustCreateUser(t, "buyer01", model.RoleCustomer)
	sellerUser := e.mustCreateUser(t, "seller01", model.RoleSeller)
	seller := e.mustCreateSeller(t, sellerUser.ID, "09171230001")
	shop := e.mustCreateShop(t, seller.ID, "Sunrise Crafts", model.Active)
	productA := e.mustCreateProduct(t, shop.ID, "woven-basket", 50, 10)
	productB := e.mustCreateProduct(t, shop.ID, "clay-mug", 80, 5)

	return &marketplaceFixture{
		customer: customer,
		seller:   seller,
		shop:     shop,
		productA: productA,
		productB: productB,
	}
}

func testCtx() context.Context {
	return context.Background()
}
