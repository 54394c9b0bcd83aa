package domain

// FrameAction is the payload a frame host posts when a user presses a
// button. UntrustedData is self-reported by the client; TrustedData holds
// the signed message bytes for hosts that verify them.
type FrameAction struct {
	UntrustedData UntrustedData `json:"untrustedData" binding:"required"`
	TrustedData   TrustedData   `json:"trustedData"`
}

type UntrustedData struct {
	FID         int64  `json:"fid"`
	ButtonIndex int    `json:"buttonIndex"`
	InputText   string `json:"inputText"`
	State       string `json:"state"`
	// TransactionID carries the payment transaction hash right after the
	// wallet submits it. On a manual refresh the hash arrives in
	// ButtonValue instead.
	TransactionID string `json:"transactionId"`
	ButtonValue   string `json:"buttonValue"`
	Address       string `json:"address"`
	CastID        CastID `json:"castId"`
}

type CastID struct {
	FID  int64  `json:"fid"`
	Hash string `json:"hash"`
}

type TrustedData struct {
	MessageBytes string `json:"messageBytes"`
}

type ButtonAction string

const (
	ButtonPost ButtonAction = "post"
	ButtonTx   ButtonAction = "tx"
	ButtonLink ButtonAction = "link"
)

type FrameButton struct {
	Label  string       `json:"label"`
	Action ButtonAction `json:"action"`
	// Target is the URL the press posts to (or opens, for link buttons).
	Target string `json:"target,omitempty"`
	// Value is echoed back in UntrustedData.ButtonValue.
	Value string `json:"value,omitempty"`
}

// FrameResponse is the image+button descriptor a frame route returns.
type FrameResponse struct {
	Image            string        `json:"image"`
	ImageAspectRatio string        `json:"imageAspectRatio,omitempty"`
	PostURL          string        `json:"postUrl,omitempty"`
	Buttons          []FrameButton `json:"buttons"`
	State            string        `json:"state,omitempty"`
}

// TxResponse is what a transaction route returns for the wallet to sign.
type TxResponse struct {
	ChainID string `json:"chainId"`
	To      string `json:"to"`
	Data    string `json:"data"`
	Value   string `json:"value"`
}

type ConfirmState string

const (
	// ConfirmSubmitted means the payment transaction is known but the
	// session has not settled; the user may re-poll.
	ConfirmSubmitted ConfirmState = "submitted"
	ConfirmSettled   ConfirmState = "settled"
)

// ConfirmResult is the render descriptor produced by one confirmation
// poll. TxHash is always carried forward so a pending result can offer a
// retry button with the same hash.
type ConfirmResult struct {
	State                    ConfirmState `json:"state"`
	TxHash                   string       `json:"tx_hash"`
	SponsoredTransactionHash string       `json:"sponsored_transaction_hash,omitempty"`
}
