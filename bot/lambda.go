package bot

// LambdaEvent is the payload of a serverless ladder request. When
// ReplyChannel is set the answer is also published there over NATS.
type LambdaEvent struct {
	Request
	RequestID    string `json:"request_id"`
	ReplyChannel string `json:"reply_channel,omitempty"`
}
