package main

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/seafood-house/pos-backend/internal/cart"
	"github.com/seafood-house/pos-backend/internal/config"
	"github.com/seafood-house/pos-backend/internal/menu"
	"github.com/seafood-house/pos-backend/internal/order"
	"github.com/seafood-house/pos-backend/internal/payment"
	"github.com/seafood-house/pos-backend/internal/recommend"
	"github.com/seafood-house/pos-backend/internal/table"
)

// main wires dependencies and starts the HTTP server. Without a Firestore
// project configured the server runs against in-memory stores, which is
// enough for local front-end work.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(log))

	var (
		menuRepo    menu.Repository
		tableRepo   table.Repository
		submitter   order.Submitter
		paymentRepo payment.Repository
	)
	if cfg.FirestoreProject != "" {
		var opts []option.ClientOption
		if cfg.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
		client, err := firestore.NewClient(context.Background(), cfg.FirestoreProject, opts...)
		if err != nil {
			log.WithError(err).Fatal("could not create firestore client")
		}
		defer client.Close()

		menuRepo = menu.NewFirestoreRepository(client)
		tableRepo = table.NewFirestoreRepository(client)
		submitter = order.NewFirestoreSubmitter(client)
		paymentRepo = payment.NewFirestoreRepository(client)
		log.WithField("project", cfg.FirestoreProject).Info("using firestore backend")
	} else {
		menuRepo = menu.NewInMemoryRepository(sampleMenu())
		tableRepo = table.NewInMemoryRepository(sampleTables())
		submitter = order.NewInMemorySubmitter()
		paymentRepo = payment.NewInMemoryRepository(nil)
		log.Warn("FIRESTORE_PROJECT_ID not set, using in-memory stores")
	}

	menuService := menu.NewService(menuRepo)
	menu.NewHandler(menuService).RegisterRoutes(app)

	cartService := cart.NewService(menuService, log)
	cart.NewHandler(cartService).RegisterRoutes(app)

	recommend.NewHandler(cartService, recommend.RealClock{}).RegisterRoutes(app)

	orderService := order.NewService(cartService, submitter, log)
	order.NewHandler(orderService).RegisterRoutes(app)

	table.NewHandler(table.NewService(tableRepo)).RegisterRoutes(app)
	payment.NewHandler(payment.NewService(paymentRepo, log)).RegisterRoutes(app)

	log.WithField("addr", cfg.Addr).Info("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Method(),
			"path":     c.OriginalURL(),
			"status":   c.Response().StatusCode(),
			"duration": time.Since(start).String(),
		}).Debug("request")
		return err
	}
}

// sampleMenu seeds the in-memory catalog with the house menu so the
// ordering screen has something to show locally.
func sampleMenu() []menu.Item {
	return []menu.Item{
		{Name: "Hàu nướng mỡ hành", Price: 120000, CategoryID: "oyster", ImageURL: "/images/hau-nuong.jpg"},
		{Name: "Hàu sống", Price: 100000, CategoryID: "oyster", ImageURL: "/images/hau-song.jpg"},
		{Name: "Tôm hấp bia", Price: 80000, CategoryID: "shrimp", ImageURL: "/images/tom-hap.jpg"},
		{Name: "Tôm nướng muối ớt", Price: 95000, CategoryID: "shrimp", ImageURL: "/images/tom-nuong.jpg"},
		{Name: "Gỏi cuốn", Price: 45000, CategoryID: "appetizer", ImageURL: "/images/goi-cuon.jpg"},
		{Name: "Gà chiên nước mắm", Price: 90000, CategoryID: "appetizer", ImageURL: "/images/ga-chien.jpg"},
		{Name: "Chè khúc bạch", Price: 35000, CategoryID: "dessert", ImageURL: "/images/che.jpg"},
		{Name: "Bia Sài Gòn", Price: 20000, CategoryID: "drink", ImageURL: "/images/bia.jpg"},
		{Name: "Nước sâm", Price: 15000, CategoryID: "drink", ImageURL: "/images/nuoc-sam.jpg"},
	}
}

func sampleTables() []table.Table {
	out := make([]table.Table, 0, 8)
	for i := 1; i <= 8; i++ {
		out = append(out, table.Table{TableNumber: i, Seats: 4, Status: table.StatusAvailable})
	}
	return out
}
