package client

import "fmt"

// User is a professional user as returned by the API.
type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	LastName   string `json:"last_name"`
	DNI        string `json:"dni"`
	Province   string `json:"province"`
	City       string `json:"city"`
	Tel        string `json:"tel"`
	Link       string `json:"link"`
	AboutMe    string `json:"about_me"`
	Gender     string `json:"gender"`
	BirthDate  string `json:"birth_date"`
	AuthNumber string `json:"auth_number"`
	Img        string `json:"img"`
	CategoryID int    `json:"category_id"`
}

// Profile holds the editable attributes sent on signup and edit.
type Profile struct {
	Name       string `json:"name"`
	LastName   string `json:"last_name"`
	DNI        string `json:"dni,omitempty"`
	Province   string `json:"province,omitempty"`
	City       string `json:"city,omitempty"`
	Tel        string `json:"tel,omitempty"`
	Link       string `json:"link,omitempty"`
	AboutMe    string `json:"about_me,omitempty"`
	Gender     string `json:"gender,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	AuthNumber string `json:"auth_number,omitempty"`
	Img        string `json:"img,omitempty"`
	CategoryID int    `json:"category_id"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Profile
}

// Envelope is the {error, message, code} body the API uses for mutations
// and failures.
type Envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("professionals api: %d %s", e.Status, e.Message)
}
