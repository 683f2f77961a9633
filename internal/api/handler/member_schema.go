package handler

import "time"

type registerMemberRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,min=4"`
	Name     string `json:"name"     validate:"required,max=100"`
	// Role is never accepted from clients; every new member is ROLE_USER.
}

type updateProfileRequest struct {
	Name     string `json:"name"     validate:"omitempty,max=100"`
	Password string `json:"password" validate:"omitempty,min=4"`
}

// memberResponse is the public-safe member projection. The password hash has
// no field here at all.
type memberResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
