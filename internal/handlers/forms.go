package handlers

// RegisterForm is the registration form payload
type RegisterForm struct {
	Username     string `form:"username"`
	Email        string `form:"email"`
	Password     string `form:"password"`
	Confirmation string `form:"confirmation"`
}

// LoginForm is the login form payload
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// ListingForm is the create-listing form payload
type ListingForm struct {
	Name         string `form:"name"`
	InitialPrice string `form:"initial_price"`
	Description  string `form:"description"`
	Image        string `form:"image"`
	Category     string `form:"category"`
}
