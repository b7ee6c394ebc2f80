package dto

// ChatRequest represents the API request for one chat turn
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"userId"`
}

// ChatResponse represents the API response for a chat turn
type ChatResponse struct {
	Response           string `json:"response"`
	IsGoldRelated      bool   `json:"isGoldRelated"`
	UserID             string `json:"userId"`
	PurchaseEncouraged bool   `json:"purchaseEncouraged"`
}
