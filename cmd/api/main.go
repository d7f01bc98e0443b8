package main

import (
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/notification"
	"storefront/internal/ordernum"
	"storefront/internal/server"
	"storefront/internal/usecase"
)

func main() {
	//.envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var logger *zap.Logger
	if cfg.GoEnv == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	if err := gormDB.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.DeliveryLocation{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	locationRepo := infraRepo.NewDeliveryLocationGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//通知（providerは設定で選ぶ、1回だけ）
	httpClient := &http.Client{Timeout: 15 * time.Second}
	transport := notification.NewTransport(cfg.WhatsApp, httpClient, logger)
	gateway := notification.NewGateway(cfg.WhatsApp, transport, logger)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo, categoryRepo)
	deliveryUC := usecase.NewDeliveryUsecase(locationRepo)
	orderUC := usecase.NewOrderUsecase(txManager, locationRepo, gateway, ordernum.New, logger)

	//Handler生成
	handlers := server.Handlers{
		Products:          handler.NewProductHandler(catalogUC),
		Categories:        handler.NewCategoryHandler(catalogUC),
		DeliveryLocations: handler.NewDeliveryLocationHandler(deliveryUC),
		Orders:            handler.NewOrderHandler(orderUC),
	}

	//Server起動
	e := server.New(cfg, logger, handlers)

	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info("starting server", zap.String("addr", addr))
	if err := server.Start(e, addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
