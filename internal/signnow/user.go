package signnow

import "net/http"

// UserGet fetches the authenticated account's profile.
type UserGet struct {
	baseRequest
}

func NewUserGet() *UserGet { return &UserGet{} }

func (r *UserGet) Method() string { return http.MethodGet }
func (r *UserGet) Path() string   { return "/user" }

type UserGetResponse struct {
	Id           string `json:"id"`
	PrimaryEmail string `json:"primary_email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}
