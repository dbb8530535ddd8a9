package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/sperry-entelech/entelech-sales-process-automation/docs" // This will be auto-generated
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/http/handlers"
	repository2 "github.com/sperry-entelech/entelech-sales-process-automation/internal/adapter/persistence/repository"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/infrastructure/clock"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/infrastructure/database"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/infrastructure/payments"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/infrastructure/signature"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase"
	"github.com/sperry-entelech/entelech-sales-process-automation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	intakeRepo := repository2.NewIntakeDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	kickoffRepo := repository2.NewKickoffDynamoRepository(ddb)
	auditRepo := repository2.NewAuditDynamoRepository(ddb)
	catalogRepo := repository2.NewServiceCatalogDynamoRepository(ddb)
	templateRepo := repository2.NewTemplateDynamoRepository(ddb)
	seqRepo := repository2.NewSequenceDynamoRepository(ddb)

	systemClock := clock.SystemClock{}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	signatureGateway := signature.NewManualSignatureGateway()

	qualificationUseCase := usecase.NewQualificationUseCase(intakeRepo, auditRepo, seqRepo, systemClock)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, intakeRepo, catalogRepo, auditRepo, seqRepo, systemClock)
	contractUseCase := usecase.NewContractUseCase(contractRepo, proposalRepo, intakeRepo, templateRepo, auditRepo, seqRepo, signatureGateway, systemClock)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, contractRepo, auditRepo, seqRepo, paymentGateway, systemClock)
	kickoffUseCase := usecase.NewKickoffUseCase(kickoffRepo, contractRepo, proposalRepo, paymentRepo, templateRepo, auditRepo, seqRepo, systemClock)
	workflowUseCase := usecase.NewWorkflowUseCase(qualificationUseCase, proposalUseCase, auditRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(intakeRepo, proposalRepo, contractRepo, auditRepo)

	intakeHandler := handlers.NewIntakeHandler(qualificationUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	contractHandler := handlers.NewContractHandler(contractUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	kickoffHandler := handlers.NewKickoffHandler(kickoffUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSalesRoutes(v1, salesHandlers{
		intakes:   intakeHandler,
		proposals: proposalHandler,
		contracts: contractHandler,
		payments:  paymentHandler,
		kickoffs:  kickoffHandler,
		workflow:  workflowHandler,
		analytics: analyticsHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
