package main

import (
	"github.com/warpmint/framepay/internal/application/confirm"
	"github.com/warpmint/framepay/internal/application/sessions"
	"github.com/warpmint/framepay/internal/application/users"
	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/infrastructure/http/clients"
	"github.com/warpmint/framepay/internal/infrastructure/rpc"
	"github.com/warpmint/framepay/internal/metrics"
	"github.com/warpmint/framepay/internal/server"
	"github.com/warpmint/framepay/internal/server/websocket"
	"github.com/warpmint/framepay/pkg/cache"
	"github.com/warpmint/framepay/pkg/config"
	"github.com/warpmint/framepay/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log = logger.NewWithConfig(cfg.Logger)

	userCache, err := cache.New[int64, domain.UserProfile](cfg.Cache.UserCapacity)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create user cache")
	}

	glideClient := clients.NewGlideClient(cfg.Glide, log)
	neynarClient := clients.NewNeynarClient(cfg.Neynar, log)
	collectorsClient := clients.NewSimpleHashClient(cfg.SimpleHash, log)

	ethReader, err := rpc.NewEthReader(cfg.Eth, cfg.Mint.ContractAddress, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to eth rpc")
	}

	recorder := metrics.NewPrometheusRecorder()

	wsHub := websocket.NewWsHub(log)
	go wsHub.Run()

	sessionSvc, err := sessions.NewSessionService(glideClient, cfg.Mint, cfg.Glide.PaymentChain, recorder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session service")
	}
	confirmSvc := confirm.NewConfirmService(glideClient, wsHub, recorder, log)
	userSvc := users.NewUserService(neynarClient, userCache, log)

	srv := server.New(cfg, sessionSvc, confirmSvc, userSvc, collectorsClient, ethReader, wsHub, log)
	srv.Start()
}
