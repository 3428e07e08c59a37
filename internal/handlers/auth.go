package handlers

import "net/http"

type currentUserResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// CurrentUser is a connectivity stub. Identity is verified by the client
// layer against Firebase Auth before requests reach this backend; the
// userId in each path is trusted as-is.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, currentUserResponse{
		Message: "Backend ready for user interactions (assuming client-side Firebase Auth).",
		Status:  "ok",
	})
}
