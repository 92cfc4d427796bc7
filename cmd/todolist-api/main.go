package main

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "todolist-api/configs"
	_ "todolist-api/docs"
	"todolist-api/internal/application/controller"
	"todolist-api/internal/application/middleware"
	"todolist-api/internal/application/security"
	"todolist-api/internal/domain/gateway/cache"
	"todolist-api/internal/domain/gateway/db"
	"todolist-api/internal/domain/usecase/health"
	"todolist-api/internal/domain/usecase/role"
	"todolist-api/internal/domain/usecase/state"
	"todolist-api/internal/domain/usecase/task"
	"todolist-api/internal/domain/usecase/todo"
	"todolist-api/internal/domain/usecase/user"
	"todolist-api/internal/infra/database/gorm"
	"todolist-api/internal/infra/database/sql"
	"todolist-api/pkg/log"
	"todolist-api/pkg/msg"
	"todolist-api/pkg/redis"
	"todolist-api/pkg/resource"
)

// @title To-Do List API
// @version 1.0
// @description Multi-user to-do list service with shared lists and tasks
// @BasePath /
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	if err := gorm.Migrate(); err != nil {
		log.Fatal("Fail to migrate Database", zap.Error(err))
	}
	if err := gorm.Seed(); err != nil {
		log.Fatal("Fail to seed Database", zap.Error(err))
	}

	referenceTTL := resource.GetDuration("app.redis.reference-ttl")
	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL("roles", referenceTTL).
		WithCacheTTL("states", referenceTTL))
	roleCache := redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName("roles"))
	stateCache := redis.NewCache(redisClient, redis.NewCacheOptions().WithCacheName("states"))

	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupRequestLogger(e)
	api := e.Group(resource.GetString("app.server.context-path"))

	// Init Gateway
	// dbGatewayGorm := db.NewGormHealthDBGateway(gorm.Db)
	dbGatewaySQL := db.NewSQLHealthDBGateway(sql.Db)
	cacheGateway := cache.NewRedisHealthGateway(redisClient)
	userGateway := db.NewGormUserGateway(gorm.Db)
	roleGateway := db.NewGormRoleGateway(gorm.Db)
	stateGateway := db.NewGormStateGateway(gorm.Db)
	todoGateway := db.NewGormToDoGateway(gorm.Db)
	taskGateway := db.NewGormTaskGateway(gorm.Db)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(dbGatewaySQL, cacheGateway)
	userUseCase := user.NewUserUseCase(userGateway)
	roleUseCase := role.NewRoleUseCase(roleGateway, roleCache)
	stateUseCase := state.NewStateUseCase(stateGateway, stateCache)
	todoUseCase := todo.NewToDoUseCase(todoGateway, userGateway)
	taskUseCase := task.NewTaskUseCase(taskGateway)

	// Init Security
	codec := security.NewTokenCodec(
		resource.GetString("app.security.jwt-secret"),
		resource.GetDuration("app.security.token-ttl"))
	authenticated := middleware.Authenticated(codec)

	// Init Controller
	healthController := controller.NewHealthController(api, healthUseCase)
	authController := controller.NewAuthController(api, userUseCase, codec)
	homeController := controller.NewHomeController(api, userUseCase, authenticated)
	userController := controller.NewUserController(api, userUseCase, roleUseCase, authenticated,
		resource.GetInt("app.security.bcrypt-cost"))
	todoController := controller.NewToDoController(api, todoUseCase, taskUseCase, userUseCase, authenticated)
	taskController := controller.NewTaskController(api, taskUseCase, todoUseCase, stateUseCase,
		resource.GetString("app.tasks.default-state"), authenticated)

	// Init Routes
	healthController.InitHealthRoutes()
	authController.InitAuthRoutes()
	homeController.InitHomeRoutes()
	userController.InitUserRoutes()
	todoController.InitToDoRoutes()
	taskController.InitTaskRoutes()
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
