package main // Entry point package

import (
    "context" // context bounds startup database work
    "log"     // Logging library

    "github.com/joho/godotenv" // Loads .env files into the environment
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/cache"
    "github.com/iliyamo/restaurant-table-reservation/internal/config"
    "github.com/iliyamo/restaurant-table-reservation/internal/database"
    "github.com/iliyamo/restaurant-table-reservation/internal/handler"
    "github.com/iliyamo/restaurant-table-reservation/internal/queue"
    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
    "github.com/iliyamo/restaurant-table-reservation/internal/router"
    "github.com/iliyamo/restaurant-table-reservation/internal/service"
)

func main() {
    _ = godotenv.Load() // .env is optional; real deployments set the environment directly

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database connect failed: %v", err)
    }
    defer db.Close()

    if err := database.EnsureSchema(context.Background(), db); err != nil {
        log.Fatalf("schema setup failed: %v", err)
    }

    redisClient := config.NewRedisClient()
    if redisClient == nil {
        log.Println("redis unavailable, serving table listings without cache")
    }
    tableCache := cache.New(redisClient, cfg.TableCacheTTL)

    customers := repository.NewCustomerRepo(db)
    tables := repository.NewTableRepo(db)
    bookings := repository.NewBookingRepo(db)
    users := repository.NewUserRepo(db)

    svc := service.NewBookingService(
        repository.NewTxRunner(db),
        customers,
        tables,
        bookings,
        queue.NewPublisher(),
        tableCache,
    )

    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), cfg.JWTSecret)
    router.RegisterAPI(e, cfg.JWTSecret,
        handler.NewCustomerHandler(customers),
        handler.NewTableHandler(tables, tableCache),
        handler.NewBookingHandler(svc, bookings),
        handler.NewReportHandler(bookings),
    )

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)

    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
