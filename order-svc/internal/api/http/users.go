package httpapi

import (
	"net/http"
	"strings"

	"food-ordering/order-svc/internal/domain"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var reg domain.Registration
	if err := decodeBody(r, &reg); err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.Users.Register(r.Context(), reg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login accepts a JSON body or an OAuth2 password form, where the email is
// sent as username.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			h.writeError(w, r, domain.ErrInvalidInput)
			return
		}
		req.Email = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
	} else if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	user, err := h.Users.Profile(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	var update domain.ProfileUpdate
	if err := decodeBody(r, &update); err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.Users.UpdateProfile(r.Context(), identity, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	users, err := h.Users.ListUsers(r.Context(), identity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	user, err := h.Users.GetUser(r.Context(), identity, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.Users.DeleteUser(r.Context(), identity, id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
