package handler

import (
	"github.com/smarthome/building-dashboard/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    form:"email"    validate:"required,email,max=254"`
	Password string `json:"password" form:"password" validate:"required,max=128"`
	Role     string `json:"role"     form:"role"     validate:"required,role"`
}

type switchRoleRequest struct {
	Role string `json:"role" form:"role" validate:"required,role"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *domain.Identity `json:"identity,omitempty"`
	Token         string           `json:"token,omitempty"`
	Redirect      string           `json:"redirect,omitempty"`
}

type roleOption struct {
	Value       domain.Role `json:"value"`
	Label       string      `json:"label"`
	Description string      `json:"description"`
}

type loginViewResponse struct {
	Name     string           `json:"view"`
	Roles    []roleOption     `json:"roles"`
	DemoNote string           `json:"demo_note"`
	Identity *domain.Identity `json:"identity,omitempty"`
}

type notFoundResponse struct {
	Name string `json:"view"`
	Path string `json:"path"`
	Home string `json:"home"`
}

type controlRequest struct {
	Value any `json:"value"`
}

type controlResponse struct {
	CommandID string `json:"command_id"`
	DeviceID  string `json:"device_id"`
	Value     any    `json:"value"`
	Status    string `json:"status"`
}
