package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	_ "github.com/mghazyfawazh/jadwalku/docs"
	"github.com/mghazyfawazh/jadwalku/internal/config"
	"github.com/mghazyfawazh/jadwalku/internal/handlers"
	"github.com/mghazyfawazh/jadwalku/internal/middleware"
	"github.com/mghazyfawazh/jadwalku/internal/repo"
)

// @title           Jadwalku API
// @version         1.0
// @description     School schedule service: CRUD, xlsx bulk import, JP reports.
// @BasePath        /api
func main() {
	// load env
	godotenv.Load()
	cfg := config.Load()

	client := connectMongo(cfg.MongoURI)
	coll := client.Database(cfg.DBName).Collection("schedules")

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "x-api-key"},
	}))

	h := handlers.NewHandler(repo.NewMongoRepo(coll), cfg.UploadsDir, cfg.ReportsDir)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "School Schedules API is running")
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.Static("/reports", cfg.ReportsDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api", middleware.APIKeyAuth(cfg.APIKey))
	s := api.Group("/schedules")
	s.POST("", h.Create)
	s.GET("", h.GetAll)
	s.GET("/detail/:uuid", h.GetByUUID)
	s.PUT("/:uuid", h.Update)
	s.DELETE("/:uuid", h.Delete)
	s.POST("/upload", h.ImportExcel)
	s.GET("/student", h.StudentSchedule)
	s.GET("/teacher", h.TeacherSchedule)
	s.GET("/report/rekap-jp", h.RekapJP)
	s.GET("/export", h.ExportJP)

	log.Println("Server running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func connectMongo(uri string) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatal(err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}
	log.Println("MongoDB connected")

	return client
}
