package entity

// Friendship is a directed link from UserID to FriendID. It is approved
// once FriendID has linked back to UserID.
type Friendship struct {
	UserID   int64 `db:"user_id"`
	FriendID int64 `db:"friend_id"`
	Approved bool  `db:"approved"`
}
