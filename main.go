package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"standards-hub/backend/api/middleware"
	"standards-hub/backend/api/route"
	"standards-hub/backend/common"
	"standards-hub/backend/model"
	"standards-hub/backend/service"

	"github.com/gin-gonic/gin"
)

func main() {
	flag.Parse()
	if *common.PrintVersion {
		println(common.Version)
		os.Exit(0)
	}
	if *common.PrintHelpFlag {
		common.PrintHelp()
		os.Exit(0)
	}
	common.SetupGinLog()
	common.SysLog("Standards Hub " + common.Version + " started")
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := common.LoadConfigFile(); err != nil {
		common.FatalLog(err)
	}
	// Initialize Redis
	if err := common.InitRedisClient(); err != nil {
		common.FatalLog(err)
	}
	// Initialize SQL Database
	if err := model.InitDB(); err != nil {
		common.FatalLog(err)
	}
	defer func() {
		if err := model.CloseDB(); err != nil {
			common.SysError("error closing database: " + err.Error())
		}
	}()

	// Admin session store (memory, or Redis when configured)
	service.InitSessionStore()

	// Initialize HTTP server
	server := gin.Default()
	server.Use(middleware.CORS())

	route.SetRouter(server)

	port := strconv.Itoa(*common.Port)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.FatalLog("failed to start server: " + err.Error())
		}
	}()
	common.SysLog("Server listening on port: " + port)

	// Drain in-flight requests before the deferred CloseDB runs.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	common.SysLog("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		common.SysError("server shutdown: " + err.Error())
	}
}
