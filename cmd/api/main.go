package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/JonathanSerafinCM/OCR/internal/db"
	"github.com/JonathanSerafinCM/OCR/internal/llm"
	"github.com/JonathanSerafinCM/OCR/internal/menu"
	"github.com/JonathanSerafinCM/OCR/internal/prefs"
	"github.com/JonathanSerafinCM/OCR/internal/ratings"
	"github.com/JonathanSerafinCM/OCR/internal/recommend"
	"github.com/JonathanSerafinCM/OCR/internal/storage"
	"github.com/JonathanSerafinCM/OCR/internal/views"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	production := os.Getenv("APP_ENV") == "production"
	if !production {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── ARCHIVE (OPTIONAL) ─────────────────────────
	var archive menu.Archive
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		archive = r2Client
	} else {
		log.Println("R2 not configured, source archiving disabled")
	}

	// ───────────────────────── REPOS ─────────────────────────
	menuRepo := menu.NewPostgresRepository(pgDB)
	prefsRepo := prefs.NewPostgresRepository(pgDB)
	ratingsRepo := ratings.NewPostgresRepository(pgDB)
	viewsRepo := views.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	menuService := menu.NewService(menuRepo, llm.NewGeminiClient(), archive)
	menuService.Production = production

	// ───────────────────────── HANDLERS ─────────────────────────
	menuHandler := menu.NewHandler(menuService, menuRepo)
	prefsHandler := prefs.NewHandler(prefsRepo)
	recommendHandler := recommend.NewHandler(menuRepo, prefsRepo)
	ratingsHandler := ratings.NewHandler(ratingsRepo, menuRepo)
	viewsHandler := views.NewHandler(viewsRepo)

	// ───────────────────────── MENU ROUTES ─────────────────────────
	r.POST("/menu/process", menuHandler.ProcessMenu)
	r.GET("/menu/items", menuHandler.GetMenuItems)
	r.POST("/menu/filter", menuHandler.FilterMenuItems)
	r.GET("/menu/recommendations", recommendHandler.GetRecommendations)
	r.GET("/menu/popular", viewsHandler.GetPopularDishes)

	// ───────────────────────── PREFERENCE ROUTES ─────────────────────────
	r.GET("/preferences", prefsHandler.GetPreferences)
	r.POST("/preferences", prefsHandler.UpdatePreferences)
	r.POST("/preferences/update", prefsHandler.UpdatePreferences)
	r.POST("/preferences/history", prefsHandler.AppendOrderHistory)

	// ───────────────────────── TRACKING & RATING ROUTES ─────────────────────────
	r.POST("/dish/view", viewsHandler.RecordDishView)
	r.POST("/dishes/:id/rate", ratingsHandler.RateDish)
	r.GET("/dishes/:id/rating", ratingsHandler.GetDishRating)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("API listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
