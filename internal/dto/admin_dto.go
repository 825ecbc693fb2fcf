package dto

type CreateTaskRequest struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	XP            int    `json:"xp"`
	Icon          string `json:"icon"`
	ImageURL      string `json:"image_url,omitempty"`
	ScheduledDate string `json:"scheduled_date"`
	UserID        string `json:"user_id,omitempty"` // empty = template for everyone
}

type UpdateTaskRequest struct {
	Title         *string `json:"title,omitempty"`
	Category      *string `json:"category,omitempty"`
	XP            *int    `json:"xp,omitempty"`
	Icon          *string `json:"icon,omitempty"`
	ImageURL      *string `json:"image_url,omitempty"`
	ScheduledDate *string `json:"scheduled_date,omitempty"`
}

type CreateEventRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Link     string `json:"link,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Type     string `json:"type"`
	XPReward int    `json:"xp_reward"`
}

type SetWisdomRequest struct {
	Text string `json:"text"`
}

type SetUserStatusRequest struct {
	Status string `json:"status"`
}

type BroadcastRequest struct {
	Message string `json:"message"`
	Icon    string `json:"icon,omitempty"`
}
