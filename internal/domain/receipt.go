package domain

// MintReceipt is the decoded result of a settled mint transaction: the
// minter and the color carved out of the mint event's log data.
type MintReceipt struct {
	TxHash string `json:"tx_hash"`
	From   string `json:"from"`
	Color  string `json:"color"`
}
