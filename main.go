package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sankalpa008/lost-and-found/controllers"
	"github.com/sankalpa008/lost-and-found/infra"
	"github.com/sankalpa008/lost-and-found/middlewares"
	"github.com/sankalpa008/lost-and-found/models"
	"github.com/sankalpa008/lost-and-found/repositories"
	"github.com/sankalpa008/lost-and-found/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, storage *infra.LocalImageStorage) *gin.Engine {
	userRepository := repositories.NewUserRepository(db)
	sessionRepository := repositories.NewSessionRepository(db)
	itemRepository := repositories.NewItemRepository(db)

	sessionService := services.NewSessionService(sessionRepository)
	authService := services.NewAuthService(userRepository, sessionService)
	itemService := services.NewItemService(itemRepository, storage)
	adminService := services.NewAdminService(userRepository)

	authController := controllers.NewAuthController(authService)
	itemController := controllers.NewItemController(itemService)
	adminController := controllers.NewAdminController(adminService, itemService)
	uploadController := controllers.NewUploadController(storage)

	r := gin.Default()
	r.Use(cors.Default())

	// Page-level routes behind the redirect gate
	pages := r.Group("", middlewares.RouteGuard())
	pages.GET("/", itemController.FindAll)
	pages.GET("/login", pagePlaceholder("login"))
	pages.GET("/signup", pagePlaceholder("signup"))
	pages.GET("/dashboard", middlewares.AuthMiddleware(authService), itemController.FindMine)

	authRouter := r.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)
	authRouter.GET("/me", middlewares.AuthMiddleware(authService), authController.Me)

	itemRouter := r.Group("/items")
	itemRouterWithAuth := r.Group("/items", middlewares.AuthMiddleware(authService))

	itemRouter.GET("", itemController.FindAll)
	itemRouterWithAuth.GET("/:id", itemController.FindById)
	itemRouterWithAuth.POST("", itemController.Create)
	itemRouterWithAuth.PUT("/:id", itemController.Update)
	itemRouterWithAuth.DELETE("/:id", itemController.Delete)
	itemRouterWithAuth.PATCH("/:id/resolve", itemController.Resolve)

	meRouter := r.Group("/me", middlewares.AuthMiddleware(authService))
	meRouter.GET("/items", itemController.FindMine)

	adminRouter := r.Group("/admin",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(models.RoleAdmin))
	adminRouter.GET("/users", adminController.ListUsers)
	adminRouter.POST("/users", adminController.CreateUser)
	adminRouter.DELETE("/users/:id", adminController.DeleteUser)
	adminRouter.GET("/items", adminController.ListItems)

	uploadRouter := r.Group("/uploads", middlewares.AuthMiddleware(authService))
	uploadRouter.POST("", uploadController.Upload)
	r.Static("/uploads", storage.Dir())

	return r
}

// pagePlaceholder stands in for the server-rendered pages, which live
// outside this service.
func pagePlaceholder(name string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"page": name})
	}
}

func initDB() *gorm.DB {
	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(&models.User{}, &models.Item{}, &models.Session{}); err != nil {
			panic("Failed to migrate database")
		}
	}

	return db
}

func main() {
	infra.Initialize()
	db := initDB()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "public/uploads"
	}
	storage, err := infra.NewLocalImageStorage(uploadDir)
	if err != nil {
		log.Fatalf("Failed to set up image storage: %v", err)
	}

	r := setupRouter(db, storage)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
