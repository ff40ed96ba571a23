package domain

import "time"

// User is the account profile returned by the auth endpoints.
type User struct {
	ID        int        `json:"id"`
	FirstName string     `json:"nombre"`
	LastName  string     `json:"apellido"`
	Email     string     `json:"email"`
	Sex       string     `json:"sexo"`
	BirthDate string     `json:"fechaNacimiento"`
	Phone     string     `json:"telefono"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Credentials are the login inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up form as entered by the user.
type Registration struct {
	FirstName       string    `validate:"required"`
	LastName        string    `validate:"required"`
	Sex             string    `validate:"required"`
	BirthDate       time.Time `validate:"required"`
	Email           string    `validate:"required,email"`
	Phone           string    `validate:"phone_ca"`
	Password        string    `validate:"required,min=8"`
	ConfirmPassword string    `validate:"eqfield=Password"`
}

// Session is what a successful login leaves behind on the client.
type Session struct {
	Token  string
	User   *User
	UserID string
}

// Authenticated reports whether a token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// RegisterRequest is the sign-up payload in the backend's field names.
type RegisterRequest struct {
	FirstName       string `json:"nombre"`
	LastName        string `json:"apellido"`
	Sex             string `json:"sexo"`
	BirthDate       string `json:"fechaNacimiento"`
	Email           string `json:"email"`
	Phone           string `json:"telefono"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Request maps the form to the backend payload. The birth date is sent as
// YYYY-MM-DD.
func (r Registration) Request() RegisterRequest {
	return RegisterRequest{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Sex:             r.Sex,
		BirthDate:       r.BirthDate.Format(time.DateOnly),
		Email:           r.Email,
		Phone:           r.Phone,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

// AuthResponse is the body of the register and login endpoints.
type AuthResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token,omitempty"`
}
