package response

type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
	// Queued is set when the insert failed and the notification went to the retry queue.
	Queued bool `json:"queued,omitempty"`
}

type UnreadCount struct {
	Count int64 `json:"count"`
}

type ReadAll struct {
	Updated int64 `json:"updated"`
}

type Sweep struct {
	Delivered int  `json:"delivered"`
	Skipped   bool `json:"skipped"`
}
