package dto

type ConnectionRequest struct {
	TargetID string `json:"target_id"`
}

type AcceptConnectionRequest struct {
	RequesterID string `json:"requester_id"`
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Text       string `json:"text"`
}

type CreatePostRequest struct {
	Content   string `json:"content"`
	Anonymous bool   `json:"anonymous"`
	Type      string `json:"type,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}
