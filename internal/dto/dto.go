package dto

// Write results are surfaced to clients as explicit JSON bodies instead of
// raw driver types.

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type UpdateQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

type ConfirmPaymentRequest struct {
	TransactionID string  `json:"transactionId"`
	Email         string  `json:"email,omitempty"`
	Amount        float64 `json:"amount,omitempty"`
}

type UpsertUserResponse struct {
	Result *UpdateResult `json:"result"`
	Token  string        `json:"token"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
