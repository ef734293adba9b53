package routes

import (
	"context"
	"log"
	"strconv"

	_ "parceiros_internet/docs" // This will be auto-generated
	"parceiros_internet/internal/adapter/http/handlers"
	"parceiros_internet/internal/adapter/http/middleware"
	repository2 "parceiros_internet/internal/adapter/persistence/repository"
	"parceiros_internet/internal/infrastructure/auth"
	"parceiros_internet/internal/infrastructure/config"
	"parceiros_internet/internal/infrastructure/database"
	"parceiros_internet/internal/infrastructure/storage"
	"parceiros_internet/internal/usecase"

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
	site, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load site configuration: %v", err)
	}

	ddb := database.ConnectDynamoDB()

	planRepo := repository2.NewPlanDynamoRepository(ddb)
	businessPlanRepo := repository2.NewBusinessPlanDynamoRepository(ddb)
	testimonialRepo := repository2.NewTestimonialDynamoRepository(ddb)
	companyRepo := repository2.NewTrustedCompanyDynamoRepository(ddb)
	settingRepo := repository2.NewSiteSettingDynamoRepository(ddb)
	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	contractRepo := repository2.NewContractDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	roleRepo := repository2.NewUserRoleDynamoRepository(ddb)

	logoStorage, err := storage.NewS3LogoStorage(context.Background())
	if err != nil {
		log.Fatalf("Failed to create logo storage: %v", err)
	}
	tokenManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	seedDefaults(planRepo, businessPlanRepo, testimonialRepo)

	catalogUseCase := usecase.NewCatalogUseCase(planRepo, businessPlanRepo)
	coverageUseCase := usecase.NewCoverageUseCase(site)
	recommendationUseCase := usecase.NewRecommendationUseCase(site, planRepo)
	intakeUseCase := usecase.NewIntakeUseCase(site, planRepo, contractRepo, leadRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, roleRepo, auth.NewBcryptHasher(), tokenManager)
	contentUseCase := usecase.NewContentUseCase(testimonialRepo, companyRepo, settingRepo, logoStorage)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	coverageHandler := handlers.NewCoverageHandler(coverageUseCase)
	quizHandler := handlers.NewQuizHandler(recommendationUseCase)
	intakeHandler := handlers.NewIntakeHandler(intakeUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	contentHandler := handlers.NewContentHandler(contentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSiteRoutes(v1, catalogHandler, coverageHandler, quizHandler, intakeHandler, contentHandler)

	// Rotas administrativas (bearer token + role admin)
	addAdminRoutes(
		v1,
		middleware.RequireAdmin(tokenManager, authUseCase),
		authHandler,
		catalogHandler,
		contentHandler,
		intakeHandler,
	)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
