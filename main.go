package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelbook/internal/config"
	intdb "travelbook/internal/db"
	router "travelbook/internal/http"
	"travelbook/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	if err := intdb.EnsureSchema(bootCtx, db); err != nil {
		log.Fatalf("Gagal menyiapkan schema: %v", err)
	}
	if env.AdminUsername != "" && env.AdminPassword != "" {
		staff, err := services.AuthService{DB: db, RequestID: "boot"}.EnsureStaff(bootCtx, env.AdminUsername, env.AdminPassword)
		if err != nil {
			log.Fatalf("Gagal menyiapkan akun staff: %v", err)
		}
		log.Printf("Akun staff siap: %s (id=%d)", staff.Username, staff.ID)
	}
	cancelBoot()

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
