package user

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// Public is the part of a user that may leave the service.
type Public struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (u *User) Public() Public {
	return Public{
		ID:       u.ID,
		Username: u.Username,
	}
}
