package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/application/users"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/internal/render"
	"github.com/warpmint/framepay/pkg/config"
)

const leaderboardSize = 10

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

// ImageHandler serves visual trees for the external image renderer. Every
// route answers 200 with a tree; data failures degrade to an error tree
// rather than breaking the frame.
type ImageHandler struct {
	userSvc    users.IUserService
	collectors interfaces.CollectorsClient
	reader     interfaces.ChainReader
	cfg        *config.Config
	logger     zerolog.Logger
}

func NewImageHandler(userSvc users.IUserService, collectors interfaces.CollectorsClient, reader interfaces.ChainReader, cfg *config.Config, logger zerolog.Logger) *ImageHandler {
	return &ImageHandler{
		userSvc:    userSvc,
		collectors: collectors,
		reader:     reader,
		cfg:        cfg,
		logger:     logger,
	}
}

func (h *ImageHandler) StatusPending(c *gin.Context) {
	c.JSON(http.StatusOK, render.Pending())
}

func (h *ImageHandler) StatusSettled(c *gin.Context) {
	c.JSON(http.StatusOK, render.Settled("Mint complete!"))
}

func (h *ImageHandler) Color(c *gin.Context) {
	hex := c.Param("hex")
	if !hexColorPattern.MatchString(hex) {
		c.JSON(http.StatusOK, render.ErrorMessage("Unknown color"))
		return
	}
	c.JSON(http.StatusOK, render.MintFinish("#"+hex))
}

func (h *ImageHandler) Error(c *gin.Context) {
	message := c.Query("msg")
	if message == "" {
		message = "Something went wrong"
	}
	c.JSON(http.StatusOK, render.ErrorMessage(message))
}

func (h *ImageHandler) Leaderboard(c *gin.Context) {
	address := c.Param("address")
	ctx := c.Request.Context()

	balance := "0"
	if b, err := h.reader.ColorBalance(ctx, address); err != nil {
		h.logger.Warn().Err(err).Str("address", address).Msg("Failed to read color balance")
	} else {
		balance = b.String()
	}

	collectors, err := h.collectors.TopCollectors(ctx, h.cfg.Mint.ContractAddress, leaderboardSize)
	if err != nil {
		h.logger.Warn().Err(err).Msg("Failed to fetch top collectors")
		c.JSON(http.StatusOK, render.ErrorMessage("Leaderboard unavailable right now"))
		return
	}

	addresses := make([]string, len(collectors))
	for i, collector := range collectors {
		addresses[i] = collector.OwnerAddress
	}

	names, err := h.userSvc.DisplayNamesByAddress(ctx, addresses)
	if err != nil {
		// Names are decoration; fall back to ENS or truncated addresses.
		h.logger.Warn().Err(err).Msg("Failed to resolve collector names")
		names = map[string]string{}
	}

	rows := make([]render.LeaderboardRow, len(collectors))
	for i, collector := range collectors {
		name, ok := names[strings.ToLower(collector.OwnerAddress)]
		if !ok || name == "" {
			name = collector.OwnerENSName
		}
		if name == "" {
			name = truncateAddress(collector.OwnerAddress)
		}
		rows[i] = render.LeaderboardRow{
			Rank:    i + 1,
			Name:    name,
			Balance: collector.TotalCopiesOwned,
		}
	}

	c.JSON(http.StatusOK, render.Leaderboard(rows, balance))
}

func truncateAddress(address string) string {
	if len(address) < 10 {
		return address
	}
	return address[:6] + "...." + address[len(address)-4:]
}
