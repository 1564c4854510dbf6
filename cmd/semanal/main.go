package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/semanalapp/semanal/internal/backup"
	"github.com/semanalapp/semanal/internal/database"
	"github.com/semanalapp/semanal/internal/logging"
	"github.com/semanalapp/semanal/internal/server"
)

func main() {
	restorePath := flag.String("restore", "", "decrypt the given snapshot, replace the database and exit")
	flag.Parse()

	port := os.Getenv("SEMANAL_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("SEMANAL_DB_PATH")
	if dbPath == "" {
		dbPath = "semanal.db"
	}

	logger := logging.Setup(os.Getenv("SEMANAL_LOG_LEVEL"), os.Getenv("SEMANAL_LOG_FORMAT"))

	backupCfg := backup.Config{
		DBPath:     dbPath,
		Dir:        os.Getenv("SEMANAL_BACKUP_DIR"),
		Passphrase: os.Getenv("SEMANAL_BACKUP_PASSPHRASE"),
		S3: backup.S3Config{
			Endpoint:  os.Getenv("SEMANAL_BACKUP_S3_ENDPOINT"),
			Bucket:    os.Getenv("SEMANAL_BACKUP_S3_BUCKET"),
			Region:    os.Getenv("SEMANAL_BACKUP_S3_REGION"),
			AccessKey: os.Getenv("SEMANAL_BACKUP_S3_ACCESS_KEY"),
			SecretKey: os.Getenv("SEMANAL_BACKUP_S3_SECRET_KEY"),
		},
	}
	if hours, err := strconv.Atoi(os.Getenv("SEMANAL_BACKUP_INTERVAL_HOURS")); err == nil && hours > 0 {
		backupCfg.Interval = time.Duration(hours) * time.Hour
	}
	if keep, err := strconv.Atoi(os.Getenv("SEMANAL_BACKUP_RETENTION")); err == nil && keep > 0 {
		backupCfg.Retention = keep
	}

	// Restore runs before the database is opened and exits on success.
	if *restorePath != "" {
		if backupCfg.Passphrase == "" {
			log.Fatal("restore requires SEMANAL_BACKUP_PASSPHRASE")
		}
		m := backup.NewManager(backupCfg, nil, nil, logger.With("component", "backup"))
		if err := m.Restore(context.Background(), *restorePath, backupCfg.Passphrase); err != nil {
			log.Fatalf("restore failed: %v", err)
		}
		return
	}

	db, err := database.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	srv := server.New(db, backupCfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv.BackupManager().Start(ctx)
	defer srv.BackupManager().Stop()

	// Prune stale rate limit windows in the background.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				srv.RateLimiter().Cleanup()
			}
		}
	}()

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("semanal running", "addr", "http://localhost:"+port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
