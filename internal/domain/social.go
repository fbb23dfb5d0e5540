package domain

import "time"

// FriendRequestStatus tracks a request through its lifecycle.
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "PENDING"
	FriendRequestAccepted FriendRequestStatus = "ACCEPTED"
	FriendRequestRejected FriendRequestStatus = "REJECTED"
)

// FriendRequestAction is the receiver's answer to a request.
type FriendRequestAction string

const (
	ActionAccept FriendRequestAction = "accept"
	ActionReject FriendRequestAction = "reject"
)

// FriendRequest asks ReceiverID to become friends with SenderID.
type FriendRequest struct {
	ID         string              `json:"id"`
	SenderID   string              `json:"sender_id"`
	ReceiverID string              `json:"receiver_id"`
	Status     FriendRequestStatus `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`

	// Sender is populated when listing received requests.
	Sender *User `json:"sender,omitempty"`
}

// IsPending reports whether the request still awaits an answer.
func (r *FriendRequest) IsPending() bool {
	return r.Status == FriendRequestPending
}

// Involves reports whether the request is between a and b in either direction.
func (r *FriendRequest) Involves(a, b string) bool {
	return (r.SenderID == a && r.ReceiverID == b) || (r.SenderID == b && r.ReceiverID == a)
}
