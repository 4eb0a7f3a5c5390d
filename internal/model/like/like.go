package like

// Like is a directed edge: LikedByUserID likes UserID.
type Like struct {
	ID            int64 `json:"id"`
	LikedByUserID int64 `json:"liked_by_user_id"`
	UserID        int64 `json:"user_id"`
}

type UserLikes struct {
	Username string `json:"username"`
	Likes    int64  `json:"likes"`
}

type Stat struct {
	Username      string `json:"username"`
	NumberOfLikes int64  `json:"numberOfLikes"`
}
