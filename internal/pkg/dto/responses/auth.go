package responses

import "time"

type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Fullname  string    `json:"fullname"`
	CreatedAt time.Time `json:"createdAt"`
}

type Login struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}
