package dto

// InfoResponse represents the API response for GET /
type InfoResponse struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// HealthResponse represents the API response for GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Backend string `json:"backend"`
}

// ChatExamplesResponse lists sample chat messages
type ChatExamplesResponse struct {
	GoldRelatedQueries []string `json:"goldRelatedQueries"`
	NonGoldQueries     []string `json:"nonGoldQueries"`
}

// PurchaseExampleResponse shows a sample purchase request
type PurchaseExampleResponse struct {
	ExampleRequest PurchaseRequest `json:"exampleRequest"`
	Note           string          `json:"note"`
}
