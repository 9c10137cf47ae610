package notify

// sendRequest is the JSON payload posted to the gateway.
type sendRequest struct {
	To     string `json:"to"`
	Body   string `json:"body"`
	Sender string `json:"sender,omitempty"`
}

// apiResponse is the gateway's standard reply envelope.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}
