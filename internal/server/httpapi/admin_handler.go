package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meetscribe/meetscribe/internal/common"
)

// AdminHandler serves the superuser-only account management endpoints.
type AdminHandler struct {
	users userService
}

func NewAdminHandler(users userService) *AdminHandler {
	return &AdminHandler{users: users}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	list, err := h.users.ListUsers(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]userResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

type statusRequest struct {
	IsActive *bool `json:"is_active"`
}

// UpdateUserStatus activates or deactivates the target account. Admins
// cannot change their own status.
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "id")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		badRequest(w, "is_active is required")
		return
	}

	actor, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	u, err := h.users.UpdateUserStatus(r.Context(), actor.ID, targetID, *req.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
