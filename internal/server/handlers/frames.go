package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/warpmint/framepay/internal/application/confirm"
	"github.com/warpmint/framepay/internal/domain"
	"github.com/warpmint/framepay/internal/domain/interfaces"
	"github.com/warpmint/framepay/pkg/config"
)

type FrameHandler struct {
	confirmSvc confirm.IConfirmService
	reader     interfaces.ChainReader
	cfg        *config.Config
	logger     zerolog.Logger
}

func NewFrameHandler(confirmSvc confirm.IConfirmService, reader interfaces.ChainReader, cfg *config.Config, logger zerolog.Logger) *FrameHandler {
	return &FrameHandler{
		confirmSvc: confirmSvc,
		reader:     reader,
		cfg:        cfg,
		logger:     logger,
	}
}

// Index is the entry frame: a static image and the mint button.
func (h *FrameHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, domain.FrameResponse{
		Image:            h.cfg.Frame.ImageBaseURL + "/intro.png",
		ImageAspectRatio: h.cfg.Frame.AspectRatio,
		PostURL:          "/frame/tx-status",
		Buttons: []domain.FrameButton{
			{Label: "Mint with Degen", Action: domain.ButtonTx, Target: "/tx/mint"},
			{Label: "Pay someone", Action: domain.ButtonPost, Target: "/frame/pay"},
		},
	})
}

// PayPrompt asks for a free-text payment instruction. The text travels
// with the transaction button press to /tx/pay.
func (h *FrameHandler) PayPrompt(c *gin.Context) {
	c.JSON(http.StatusOK, domain.FrameResponse{
		Image:            h.cfg.Frame.ImageBaseURL + "/pay-prompt.png",
		ImageAspectRatio: h.cfg.Frame.AspectRatio,
		PostURL:          "/frame/tx-status",
		Buttons: []domain.FrameButton{
			{Label: "Pay", Action: domain.ButtonTx, Target: "/tx/pay"},
		},
	})
}

// TxStatus runs one confirmation poll. The payment transaction hash
// arrives in transactionId right after the wallet submits, or in the
// refresh button's value on a manual re-poll.
func (h *FrameHandler) TxStatus(c *gin.Context) {
	var action domain.FrameAction
	if err := c.ShouldBindJSON(&action); err != nil {
		h.renderMessage(c, "Invalid frame request")
		return
	}

	txHash := action.UntrustedData.TransactionID
	if txHash == "" {
		txHash = action.UntrustedData.ButtonValue
	}
	if txHash == "" {
		h.renderMessage(c, "Missing transaction hash")
		return
	}

	result := h.confirmSvc.Confirm(c.Request.Context(), h.cfg.Glide.PaymentChain, txHash)

	if result.State == domain.ConfirmSettled {
		// The sponsored hash is the actual mint transaction; the finish
		// frame needs it to find the colors-contract log.
		c.JSON(http.StatusOK, domain.FrameResponse{
			Image:            "/img/status/settled",
			ImageAspectRatio: h.cfg.Frame.AspectRatio,
			PostURL:          "/frame/finish",
			Buttons: []domain.FrameButton{
				{
					Label:  "Reveal color",
					Action: domain.ButtonPost,
					Target: "/frame/finish",
					Value:  result.SponsoredTransactionHash,
				},
				{
					Label:  "View transaction",
					Action: domain.ButtonLink,
					Target: h.cfg.Frame.ExplorerBaseURL + "/tx/" + result.SponsoredTransactionHash,
				},
			},
		})
		return
	}

	c.JSON(http.StatusOK, domain.FrameResponse{
		Image:            "/img/status/pending",
		ImageAspectRatio: h.cfg.Frame.AspectRatio,
		PostURL:          "/frame/tx-status",
		Buttons: []domain.FrameButton{
			{Label: "Refresh", Action: domain.ButtonPost, Target: "/frame/tx-status", Value: result.TxHash},
		},
	})
}

// Finish waits for the mint receipt and shows the minted color.
func (h *FrameHandler) Finish(c *gin.Context) {
	var action domain.FrameAction
	if err := c.ShouldBindJSON(&action); err != nil {
		h.renderMessage(c, "Invalid frame request")
		return
	}

	txHash := action.UntrustedData.TransactionID
	if txHash == "" {
		txHash = action.UntrustedData.ButtonValue
	}
	if txHash == "" {
		h.renderMessage(c, "Missing transaction hash")
		return
	}

	receipt, err := h.reader.WaitForMintReceipt(c.Request.Context(), txHash)
	if err != nil {
		h.logger.Debug().Err(err).Str("tx_hash", txHash).Msg("Mint receipt not available, staying pending")
		c.JSON(http.StatusOK, domain.FrameResponse{
			Image:            "/img/status/pending",
			ImageAspectRatio: h.cfg.Frame.AspectRatio,
			PostURL:          "/frame/finish",
			Buttons: []domain.FrameButton{
				{Label: "Refresh", Action: domain.ButtonPost, Target: "/frame/finish", Value: txHash},
			},
		})
		return
	}

	// Follow-up mints post into the leaderboard frame for the minter.
	shareText := url.QueryEscape("I just minted a Base Color!")
	c.JSON(http.StatusOK, domain.FrameResponse{
		Image:            "/img/color/" + receipt.Color[1:],
		ImageAspectRatio: h.cfg.Frame.AspectRatio,
		PostURL:          "/frame/leaderboard/" + url.PathEscape(receipt.From),
		Buttons: []domain.FrameButton{
			{Label: "Mint +1", Action: domain.ButtonTx, Target: "/tx/mint"},
			{Label: "Mint +10", Action: domain.ButtonTx, Target: "/tx/mint-batch"},
			{
				Label:  "Share",
				Action: domain.ButtonLink,
				Target: "https://warpcast.com/~/compose?text=" + shareText,
			},
			{
				Label:  "Name it",
				Action: domain.ButtonLink,
				Target: h.cfg.Frame.BrowserLocation + "?addressFromFrame=" + url.QueryEscape(receipt.From),
			},
		},
	})
}

// Leaderboard shows the top collectors and the viewer's balance.
func (h *FrameHandler) Leaderboard(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		h.renderMessage(c, "Missing address")
		return
	}

	c.JSON(http.StatusOK, domain.FrameResponse{
		Image:            "/img/leaderboard/" + url.PathEscape(address),
		ImageAspectRatio: h.cfg.Frame.AspectRatio,
		Buttons: []domain.FrameButton{
			{Label: "Mint +10", Action: domain.ButtonTx, Target: "/tx/mint-batch"},
			{
				Label:  "Name Colors",
				Action: domain.ButtonLink,
				Target: h.cfg.Frame.BrowserLocation + "?addressFromFrame=" + url.QueryEscape(address),
			},
			{Label: "Refresh", Action: domain.ButtonPost, Target: "/frame/leaderboard/" + url.PathEscape(address)},
		},
	})
}

// renderMessage renders a validation failure as a normal frame. The
// request itself completes with HTTP 200.
func (h *FrameHandler) renderMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, domain.FrameResponse{
		Image:            fmt.Sprintf("/img/error?msg=%s", url.QueryEscape(message)),
		ImageAspectRatio: h.cfg.Frame.AspectRatio,
		Buttons: []domain.FrameButton{
			{Label: "Back", Action: domain.ButtonPost, Target: "/frame"},
		},
	})
}
