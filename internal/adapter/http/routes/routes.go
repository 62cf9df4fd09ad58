package routes

import (
	"context"
	"fmt"

	_ "os_service_api/docs"
	request "os_service_api/internal/adapter/http/dto/request"
	"os_service_api/internal/adapter/http/handlers"
	repository2 "os_service_api/internal/adapter/persistence/repository"
	"os_service_api/internal/domain/entities"
	"os_service_api/internal/infrastructure/config"
	"os_service_api/internal/infrastructure/database"
	"os_service_api/internal/infrastructure/logger"
	"os_service_api/internal/infrastructure/payments"
	"os_service_api/internal/usecase"
	"os_service_api/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Orders    *handlers.OrderHandler
	Customers *handlers.CustomerHandler
	Vehicles  *handlers.VehicleHandler
	Services  *handlers.ServiceHandler
	Materials *handlers.MaterialHandler
	Payments  *handlers.OrderPaymentHandler
}

// Run wires the DynamoDB-backed application and serves it on cfg.ListenAddr.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	h, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}
	router, err := NewRouter(log, h)
	if err != nil {
		return err
	}

	log.Info("[http] listening", zap.String("addr", cfg.ListenAddr))
	if err := router.Run(cfg.ListenAddr); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 routes.
func NewRouter(log *zap.Logger, h Handlers) (*gin.Engine, error) {
	if err := request.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(logger.RequestLogger(log))
	router.Use(logger.Recovery(log))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h)
	addOrderRoutes(v1, h)
	return router, nil
}

func buildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg, log)
	if err != nil {
		return Handlers{}, err
	}

	orderRepo := repository2.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb, cfg.Tables.Customers)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb, cfg.Tables.Vehicles)
	serviceRepo := repository2.NewServiceDynamoRepository(ddb, cfg.Tables.Services)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb, cfg.Tables.Materials)
	paymentRepo := repository2.NewOrderPaymentDynamoRepository(ddb, cfg.Tables.OrderPayments)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("[payment] mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	policy := entities.NewOrderPolicy(cfg.StrictTransitions)
	orderUseCase := usecase.NewOrderUseCase(usecase.OrderRepositories{
		Orders:    orderRepo,
		Customers: customerRepo,
		Vehicles:  vehicleRepo,
		Services:  serviceRepo,
		Materials: materialRepo,
	}, policy, log)
	paymentUseCase := usecase.NewOrderPaymentUseCase(paymentRepo, orderRepo, paymentGateway, log)

	return Handlers{
		Orders:    handlers.NewOrderHandler(orderUseCase),
		Customers: handlers.NewCustomerHandler(usecase.NewCustomerUseCase(customerRepo, log)),
		Vehicles:  handlers.NewVehicleHandler(usecase.NewVehicleUseCase(vehicleRepo, customerRepo, log)),
		Services:  handlers.NewServiceHandler(usecase.NewServiceUseCase(serviceRepo, log)),
		Materials: handlers.NewMaterialHandler(usecase.NewMaterialUseCase(materialRepo, log)),
		Payments:  handlers.NewOrderPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock, log),
	}, nil
}
