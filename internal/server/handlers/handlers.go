package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/application/confirm"
	"github.com/warpmint/framepay/internal/application/sessions"
	"github.com/warpmint/framepay/internal/application/users"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/internal/server/websocket"
	"github.com/warpmint/framepay/pkg/config"
)

type Handlers struct {
	SessionSvc sessions.ISessionService
	ConfirmSvc confirm.IConfirmService
	UserSvc    users.IUserService
	Collectors interfaces.CollectorsClient
	Reader     interfaces.ChainReader
	Hub        *websocket.WsHub
	Logger     zerolog.Logger
	Config     *config.Config
}

func New(
	sessionSvc sessions.ISessionService,
	confirmSvc confirm.IConfirmService,
	userSvc users.IUserService,
	collectors interfaces.CollectorsClient,
	reader interfaces.ChainReader,
	hub *websocket.WsHub,
	logger zerolog.Logger,
	config *config.Config,
) *Handlers {
	return &Handlers{
		SessionSvc: sessionSvc,
		ConfirmSvc: confirmSvc,
		UserSvc:    userSvc,
		Collectors: collectors,
		Reader:     reader,
		Hub:        hub,
		Logger:     logger,
		Config:     config,
	}
}

func (h *Handlers) SetupHandlers(router *gin.Engine) {
	healthHandler := NewHealthHandler()
	frameHandler := NewFrameHandler(h.ConfirmSvc, h.Reader, h.Config, h.Logger)
	txHandler := NewTxHandler(h.SessionSvc, h.UserSvc, h.Config, h.Logger)
	imageHandler := NewImageHandler(h.UserSvc, h.Collectors, h.Reader, h.Config, h.Logger)
	wsHandler := NewStatusWSHandler(h.Hub, h.Config.WebSocket, h.Logger)

	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// WebSocket endpoint for session status updates
	router.GET("/status", wsHandler.HandleConnection)

	frame := router.Group("/frame")
	{
		frame.GET("", frameHandler.Index)
		frame.POST("", frameHandler.Index)
		frame.POST("/pay", frameHandler.PayPrompt)
		frame.POST("/tx-status", frameHandler.TxStatus)
		frame.POST("/finish", frameHandler.Finish)
		frame.POST("/leaderboard/:address", frameHandler.Leaderboard)
	}

	tx := router.Group("/tx")
	{
		tx.POST("/mint", txHandler.Mint)
		tx.POST("/mint-batch", txHandler.MintBatch)
		tx.POST("/pay", txHandler.Pay)
	}

	img := router.Group("/img")
	{
		img.GET("/status/pending", imageHandler.StatusPending)
		img.GET("/status/settled", imageHandler.StatusSettled)
		img.GET("/color/:hex", imageHandler.Color)
		img.GET("/leaderboard/:address", imageHandler.Leaderboard)
		img.GET("/error", imageHandler.Error)
	}
}
