package responses

type UserProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type Auth struct {
	AccessToken string       `json:"access_token"`
	User        *UserProfile `json:"user"`
}
