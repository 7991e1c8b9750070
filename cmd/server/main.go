package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/rl1809/tableside/internal/adapter/handler"
	"github.com/rl1809/tableside/internal/adapter/handler/tableapi"
	"github.com/rl1809/tableside/internal/adapter/scanner"
	"github.com/rl1809/tableside/internal/adapter/storage"
	"github.com/rl1809/tableside/internal/config"
	"github.com/rl1809/tableside/internal/core/catalog"
	"github.com/rl1809/tableside/internal/core/domain"
	"github.com/rl1809/tableside/internal/core/service"
	"github.com/rl1809/tableside/internal/port"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize store
	store, closeStore := openStore(ctx, cfg.Store)
	defer closeStore()
	if cfg.Store.Namespace != "" {
		store = storage.Namespaced(store, cfg.Store.Namespace)
	}

	// Load menu
	menu := catalog.Default()
	if cfg.Menu.File != "" {
		menu, err = catalog.LoadFile(cfg.Menu.File)
		if err != nil {
			log.Fatalf("failed to load menu: %v", err)
		}
	}
	log.Printf("menu loaded: %d categories, %d items", len(menu.Categories()), len(menu.All()))

	// Initialize session
	session := service.NewSessionService(store,
		service.WithResetDelay(cfg.Session.OrderResetDelay),
		service.WithServiceFeeRate(cfg.Session.ServiceFeeRate),
	)
	if err := session.Restore(ctx); err != nil {
		log.Fatalf("failed to restore session: %v", err)
	}
	snap := session.Snapshot()
	log.Printf("session restored: state=%s table=%q items=%d", snap.State, snap.TableID, snap.Totals.ItemCount)

	identifyCfg := handler.IdentifyConfig{
		ScanTimeout: cfg.Scanner.Timeout,
		TableLabel:  cfg.Session.TableLabel,
	}
	if cfg.Scanner.Device != "" {
		identifyCfg.Scanner = scanner.NewDeviceScanner(cfg.Scanner.Device)
		log.Printf("camera scanner on %s", cfg.Scanner.Device)
	} else {
		log.Println("no camera configured, manual entry only")
	}

	// Start receipt worker
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		receiptLoop(session.Receipts(), service.NewReceiptJournal(store))
	}()

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	tableapi.RegisterTableServiceServer(grpcServer, handler.NewGRPCHandler(session, menu, identifyCfg))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(session, menu, identifyCfg)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: httpHandler.Router(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	// Cancels a pending reset and closes the receipt channel
	session.Close()
	wg.Wait()
	log.Println("receipt worker stopped")
}

func openStore(ctx context.Context, cfg config.StoreConfig) (port.KeyValueStore, func()) {
	switch cfg.Backend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			PoolSize: 10,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		log.Println("connected to redis")
		return storage.NewRedisAdapter(rdb), func() { rdb.Close() }

	case config.BackendMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("failed to ping mysql: %v", err)
		}
		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to create kv table: %v", err)
		}
		log.Println("connected to mysql")
		return adapter, func() { db.Close() }

	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to connect postgres: %v", err)
		}
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("failed to ping postgres: %v", err)
		}
		adapter := storage.NewPostgresAdapter(pool)
		if err := adapter.EnsureSchema(ctx); err != nil {
			log.Fatalf("failed to create kv table: %v", err)
		}
		log.Println("connected to postgres")
		return adapter, pool.Close

	default:
		log.Println("using in-memory store, state is lost on restart")
		return storage.NewMemoryStore(), func() {}
	}
}

func receiptLoop(receipts <-chan domain.Receipt, journal *service.ReceiptJournal) {
	for r := range receipts {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := journal.Record(ctx, r); err != nil {
			log.Printf("receipt worker: failed to record %s for %s: %v", r.ID, r.TableID, err)
		} else {
			log.Printf("receipt worker: %s placed %s, %d items, total %s",
				r.TableID, r.ID, r.Totals.ItemCount, r.Totals.Total.StringFixed(2))
		}

		cancel()
	}
}
