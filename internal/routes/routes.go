package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AgroRegistroBR/rural-registry/internal/audit"
	"github.com/AgroRegistroBR/rural-registry/internal/cache"
	"github.com/AgroRegistroBR/rural-registry/internal/handlers"
	"github.com/AgroRegistroBR/rural-registry/internal/middleware"
	"github.com/AgroRegistroBR/rural-registry/internal/models"
	"github.com/AgroRegistroBR/rural-registry/internal/store"
	uccrop "github.com/AgroRegistroBR/rural-registry/internal/usecase/crop"
	ucfarm "github.com/AgroRegistroBR/rural-registry/internal/usecase/farm"
	ucproducer "github.com/AgroRegistroBR/rural-registry/internal/usecase/producer"
	ucuser "github.com/AgroRegistroBR/rural-registry/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cacheClient cache.Client) {

	// ======================================================
	// INFRA
	// ======================================================
	users := store.NewStore[models.User](db)
	producers := store.NewStore[models.Producer](db)
	farms := store.NewStore[models.Farm](db)
	crops := store.NewStore[models.Crop](db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createUserUC := ucuser.NewCreateUser(users)
	updateUserUC := ucuser.NewUpdateUser(users)
	userByDocumentUC := ucuser.NewGetByDocument(db)

	createProducerUC := ucproducer.NewCreateProducer(producers)
	updateProducerUC := ucproducer.NewUpdateProducer(db)
	setFarmUC := ucproducer.NewSetFarm(db)
	producerByDocumentUC := ucproducer.NewGetByDocument(db)

	createFarmUC := ucfarm.NewCreateFarm(farms)
	updateFarmUC := ucfarm.NewUpdateFarm(farms)
	setCropUC := ucfarm.NewSetCrop(db)
	dashboardUC := ucfarm.NewDashboard(db)

	createCropUC := uccrop.NewCreateCrop(crops)
	updateCropUC := uccrop.NewUpdateCrop(crops)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(users, createUserUC, updateUserUC, userByDocumentUC, auditDispatcher)
	producerHandler := handlers.NewProducerHandler(
		producers,
		createProducerUC,
		updateProducerUC,
		setFarmUC,
		producerByDocumentUC,
		auditDispatcher,
	)
	farmHandler := handlers.NewFarmHandler(
		farms,
		createFarmUC,
		updateFarmUC,
		setCropUC,
		dashboardUC,
		auditDispatcher,
	)
	cropHandler := handlers.NewCropHandler(crops, createCropUC, updateCropUC, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RequestID())
	if cacheClient != nil {
		api.Use(middleware.RateLimiter(cacheClient, 120, time.Minute))
	}
	{
		usersAPI := api.Group("/users")
		{
			usersAPI.POST("", userHandler.Create)
			usersAPI.GET("", userHandler.List)
			usersAPI.GET("/:id", userHandler.GetByID)
			usersAPI.GET("/document/:cpf_cnpj", userHandler.GetByDocument)
			usersAPI.PUT("/:id", userHandler.Update)
			usersAPI.DELETE("/:id", userHandler.Delete)
			usersAPI.PUT("/:id/deactivate", userHandler.Deactivate)
		}

		producersAPI := api.Group("/producers")
		{
			producersAPI.POST("", producerHandler.Create)
			producersAPI.GET("", producerHandler.List)
			producersAPI.GET("/:id", producerHandler.GetByID)
			producersAPI.GET("/document/:cpf_cnpj", producerHandler.GetByDocument)
			producersAPI.PUT("/:id", producerHandler.Update)
			producersAPI.DELETE("/:id", producerHandler.Delete)
			producersAPI.PUT("/:id/deactivate", producerHandler.Deactivate)

			producersAPI.PUT("/:id/farms/:farmID", producerHandler.AttachFarm)
			producersAPI.DELETE("/:id/farms/:farmID", producerHandler.DetachFarm)
		}

		farmsAPI := api.Group("/farms")
		{
			farmsAPI.POST("", farmHandler.Create)
			farmsAPI.GET("", farmHandler.List)
			farmsAPI.GET("/:id", farmHandler.GetByID)
			farmsAPI.PUT("/:id", farmHandler.Update)
			farmsAPI.DELETE("/:id", farmHandler.Delete)
			farmsAPI.PUT("/:id/deactivate", farmHandler.Deactivate)

			farmsAPI.PUT("/:id/crops/:cropID", farmHandler.AttachCrop)
			farmsAPI.DELETE("/:id/crops/:cropID", farmHandler.DetachCrop)
		}

		cropsAPI := api.Group("/crops")
		{
			cropsAPI.POST("", cropHandler.Create)
			cropsAPI.GET("", cropHandler.List)
			cropsAPI.GET("/:id", cropHandler.GetByID)
			cropsAPI.PUT("/:id", cropHandler.Update)
			cropsAPI.DELETE("/:id", cropHandler.Delete)
			cropsAPI.PUT("/:id/deactivate", cropHandler.Deactivate)
		}

		api.GET("/dashboard", farmHandler.Dashboard)
		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
