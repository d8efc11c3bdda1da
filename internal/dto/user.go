package dto

import (
	"time"

	dom "userdir/internal/domain"
)

// TimeLayout renders timestamps as ISO-8601 UTC with milliseconds.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// SignupRequest is the JSON body for POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the JSON body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public user payload. It has no password field.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// DataResponse wraps a single user as {"data": ...}.
type DataResponse struct {
	Data UserResponse `json:"data"`
}

type ListUsersResponse struct {
	Count int            `json:"count"`
	Users []UserResponse `json:"users"`
}

type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// MessageResponse is the body of every error reply.
type MessageResponse struct {
	Message string `json:"message"`
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

func UserToResponse(u dom.PublicUser) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: FormatTime(u.CreatedAt),
	}
}

func UsersToResponses(list []dom.PublicUser) []UserResponse {
	out := make([]UserResponse, len(list))
	for i := range list {
		out[i] = UserToResponse(list[i])
	}
	return out
}
