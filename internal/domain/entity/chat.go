package entity

// ChatTurn is one inbound chat message. It is never persisted.
type ChatTurn struct {
	Message string
	UserID  string
}

// ChatReply is the answer to a ChatTurn
type ChatReply struct {
	ResponseText       string
	IsGoldRelated      bool
	UserID             string
	PurchaseEncouraged bool
}
