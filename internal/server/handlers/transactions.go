package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/application/sessions"
	"github.com/warpmint/framepay/internal/application/users"
	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/pkg/config"
	"github.com/warpmint/framepay/pkg/parser"
)

// TxHandler serves the transaction routes: each returns the unsigned
// transaction of a freshly created payment session for the wallet to sign.
type TxHandler struct {
	sessionSvc sessions.ISessionService
	userSvc    users.IUserService
	cfg        *config.Config
	logger     zerolog.Logger
}

func NewTxHandler(sessionSvc sessions.ISessionService, userSvc users.IUserService, cfg *config.Config, logger zerolog.Logger) *TxHandler {
	return &TxHandler{
		sessionSvc: sessionSvc,
		userSvc:    userSvc,
		cfg:        cfg,
		logger:     logger,
	}
}

func (h *TxHandler) Mint(c *gin.Context) {
	h.mint(c, 1)
}

func (h *TxHandler) MintBatch(c *gin.Context) {
	h.mint(c, h.cfg.Mint.BatchSize)
}

func (h *TxHandler) mint(c *gin.Context, count int) {
	var action domain.FrameAction
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	payer := action.UntrustedData.Address
	if payer == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Connected wallet address is required",
		})
		return
	}

	colors := make([]string, count)
	for i := range colors {
		colors[i] = randomColor()
	}

	session, err := h.sessionSvc.CreateMintSession(c.Request.Context(), payer, colors)
	if err != nil {
		h.abortWithTaxonomy(c, err, "Failed to create mint session")
		return
	}

	c.JSON(http.StatusOK, toTxResponse(session))
}

// Pay parses the free-text instruction and opens a payment session to the
// cast author's verified address.
func (h *TxHandler) Pay(c *gin.Context) {
	var action domain.FrameAction
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": err.Error(),
		})
		return
	}

	payer := action.UntrustedData.Address
	if payer == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Connected wallet address is required",
		})
		return
	}

	intent, err := parser.Parse(action.UntrustedData.InputText)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "Could not read that. Try something like '5 usdc on arbitrum'.",
		})
		return
	}

	recipient, err := h.userSvc.VerifiedAddress(c.Request.Context(), action.UntrustedData.CastID.FID)
	if err != nil {
		h.abortWithTaxonomy(c, err, "Failed to resolve recipient")
		return
	}

	session, err := h.sessionSvc.CreatePaymentSession(
		c.Request.Context(), payer, recipient, intent.ChainID, intent.Currency, intent.Amount)
	if err != nil {
		h.abortWithTaxonomy(c, err, "Failed to create payment session")
		return
	}

	c.JSON(http.StatusOK, toTxResponse(session))
}

// abortWithTaxonomy maps the failure taxonomy onto distinct statuses and
// user-facing messages. Wallet clients surface the message directly.
func (h *TxHandler) abortWithTaxonomy(c *gin.Context, err error, logMsg string) {
	h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg(logMsg)

	switch {
	case errors.Is(err, domain.ErrCurrencyNotSupported):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "That currency isn't supported on the chosen chain.",
		})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "Couldn't find that user.",
		})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Bad Request",
			"message": "The recipient has no verified address.",
		})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "Bad Gateway",
			"message": "The payment service is unavailable, please try again.",
		})
	}
}

func toTxResponse(session *domain.PaymentSession) domain.TxResponse {
	return domain.TxResponse{
		ChainID: session.UnsignedTransaction.ChainID,
		To:      session.UnsignedTransaction.To,
		Data:    session.UnsignedTransaction.Input,
		Value:   session.UnsignedTransaction.Value,
	}
}

func randomColor() string {
	return fmt.Sprintf("#%06x", rand.IntN(0x1000000))
}
