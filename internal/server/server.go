package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/application/confirm"
	"github.com/warpmint/framepay/internal/application/sessions"
	"github.com/warpmint/framepay/internal/application/users"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/internal/server/handlers"
	"github.com/warpmint/framepay/internal/server/middleware"
	"github.com/warpmint/framepay/internal/server/websocket"
	"github.com/warpmint/framepay/pkg/config"
)

type Server struct {
	SessionSvc sessions.ISessionService
	ConfirmSvc confirm.IConfirmService
	UserSvc    users.IUserService
	Collectors interfaces.CollectorsClient
	Reader     interfaces.ChainReader
	Cfg        *config.Config
	Logger     zerolog.Logger
	Router     *gin.Engine
	httpServer *http.Server
	WsHub      *websocket.WsHub
}

func New(
	cfg *config.Config,
	sessionSvc sessions.ISessionService,
	confirmSvc confirm.IConfirmService,
	userSvc users.IUserService,
	collectors interfaces.CollectorsClient,
	reader interfaces.ChainReader,
	wsHub *websocket.WsHub,
	logger zerolog.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	return &Server{
		Cfg:        cfg,
		SessionSvc: sessionSvc,
		ConfirmSvc: confirmSvc,
		UserSvc:    userSvc,
		Collectors: collectors,
		Reader:     reader,
		Logger:     logger,
		Router:     router,
		WsHub:      wsHub,
	}
}

func (s *Server) SetupRouter() {
	mw := middleware.NewMiddleware(s.Logger)
	mw.SetupMiddleware(s.Router)

	handler := handlers.New(
		s.SessionSvc,
		s.ConfirmSvc,
		s.UserSvc,
		s.Collectors,
		s.Reader,
		s.WsHub,
		s.Logger,
		s.Cfg,
	)
	handler.SetupHandlers(s.Router)
}

func (s *Server) Start() {
	s.SetupRouter()

	s.httpServer = &http.Server{
		Addr:         s.Cfg.Server.Host + ":" + s.Cfg.Server.Port,
		Handler:      s.Router,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 90 * time.Second, // confirmation polls can hold a request open
	}

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	s.Logger.Info().Msgf("Starting server on %s", s.httpServer.Addr)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-stopChan
	s.Logger.Info().Msg("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.Logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	s.Logger.Info().Msg("Server exited gracefully")
}
