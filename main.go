package main

import (
	"fmt"
	"log"
	"os"
	"time"

	cartControllers "github.com/Dhanasriganesh/powder/controllers/cart"
	checkoutControllers "github.com/Dhanasriganesh/powder/controllers/checkout"
	invoiceControllers "github.com/Dhanasriganesh/powder/controllers/invoice"
	orderControllers "github.com/Dhanasriganesh/powder/controllers/order"
	razorpayControllers "github.com/Dhanasriganesh/powder/controllers/razorpay"
	"github.com/Dhanasriganesh/powder/models"
	"github.com/Dhanasriganesh/powder/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.ProductSize{},
		&models.Cart{},
		&models.CartItem{},
		&models.DeliveryInfo{},
		&models.ShippingAddress{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
		&models.Favorite{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Payment gateway client
	gateway := razorpayControllers.NewClientFromEnv()

	// Invoice output directory, served as static files
	invoiceDir := os.Getenv("INVOICE_DIR")
	if invoiceDir == "" {
		invoiceDir = "./invoices"
	}
	r.Static("/invoices", invoiceDir)

	// Checkout orchestrator
	svc := &checkoutControllers.Service{
		Carts:          cartControllers.Store{DB: db},
		Sessions:       checkoutControllers.GormSessionStore{DB: db},
		Orders:         orderControllers.Store{DB: db},
		Gateway:        gateway,
		PaymentPageURL: gateway.PaymentPageURL(),
		Invoices:       invoiceControllers.DirWriter{Dir: invoiceDir},
		OnOrderSaved:   orderControllers.BroadcastOrder,
	}

	// Setup routes
	routes.SetupRoutes(r, db, svc)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}
