package main

import (
	"os"

	"cupcakes/internal/config"
	"cupcakes/internal/domain/model"
	"cupcakes/internal/handler"
	"cupcakes/internal/infra/db"
	"cupcakes/internal/infra/event"
	"cupcakes/internal/infra/mail"
	infraRepo "cupcakes/internal/infra/repository"
	"cupcakes/internal/infra/storage"
	"cupcakes/internal/logging"
	"cupcakes/internal/server"
	"cupcakes/internal/usecase"
	"cupcakes/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	//.envは無くても起動できる（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.LogLevel)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Error("db connect failed", "error", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.WishlistItem{},
		&model.Review{},
		&model.AuditLog{},
		&model.InventoryAdjustment{},
	); err != nil {
		logger.Error("migrate failed", "error", err)
		os.Exit(1)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	reviewRepo := infraRepo.NewReviewGormRepository(gormDB)
	inventoryRepo := infraRepo.NewInventoryGormRepository(gormDB)
	auditLogRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//インフラ部品
	publisher := event.NewKafkaPublisher(cfg.KafkaBrokers)
	defer publisher.Close()

	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)

	fileStore, err := storage.NewLocalFileStore(cfg.UploadDir, cfg.BaseURL)
	if err != nil {
		logger.Error("storage init failed", "error", err)
		os.Exit(1)
	}

	//Usecase生成
	authV := validator.NewAuthValidator(userRepo)
	authUC := usecase.NewAuthUsecase(cfg, userRepo, authV)
	catalogUC := usecase.NewCatalogUsecase(productRepo, reviewRepo)
	reviewUC := usecase.NewReviewUsecase(reviewRepo, productRepo, userRepo)
	cartUC := usecase.NewCartUsecase(cartItemRepo, productRepo, publisher, logger)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, cartItemRepo, userRepo, publisher, mailer, logger)
	orderUC := usecase.NewOrderUsecase(orderRepo, orderItemRepo)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, inventoryRepo, auditLogRepo, logger)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, orderRepo, orderItemRepo, auditLogRepo, publisher, logger)
	dashboardUC := usecase.NewDashboardUsecase(orderRepo, productRepo, reviewRepo)
	auditUC := usecase.NewAuditLogUsecase(auditLogRepo)

	//Handler生成
	h := server.Handlers{
		Auth:         handler.NewAuthHandler(authUC),
		Product:      handler.NewProductHandler(catalogUC, reviewUC),
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(checkoutUC, orderUC),
		Wishlist:     handler.NewWishlistHandler(wishlistUC),
		Upload:       handler.NewUploadHandler(fileStore),
		AdminProduct: handler.NewAdminProductHandler(adminProductUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminOrderUC, dashboardUC, auditUC),
	}

	e := server.New(cfg, logger, userRepo, h, fileStore.Dir())

	addr := ":" + cfg.Port
	logger.Info("server starting", "addr", addr)
	if err := e.Start(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
