package models

// TopCollectorsResponse is the NFT metadata API's top-collectors shape.
type TopCollectorsResponse struct {
	TopCollectors []TopCollector `json:"top_collectors"`
}

type TopCollector struct {
	OwnerAddress     string `json:"owner_address"`
	OwnerENSName     string `json:"owner_ens_name"`
	TotalCopiesOwned int    `json:"total_copies_owned"`
}
