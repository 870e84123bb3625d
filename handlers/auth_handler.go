package handlers

import (
	"encoding/json"
	"net/http"

	"cvscanner/models"
	"cvscanner/services"

	"go.uber.org/zap"
)

type AuthHandler struct {
	Service services.AccountService
	Logger  *zap.Logger
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Service.Register(&req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User registered successfully")
}

// Login handles POST /auth/login. Credential check only; no token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Service.Login(&req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Login successful")
}

// ChangePassword handles POST /auth/change-password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Service.ChangePassword(&req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Password changed successfully")
}

// Me handles GET /auth/me?email=.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetCurrentUser(r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// AllUsers handles GET /auth/all-users.
func (h *AuthHandler) AllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.Logger.Error("list users failed", zap.Error(err))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// SearchUsers handles GET /auth/search-users?query=.
func (h *AuthHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.SearchUsers(r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// FilterUsers handles GET /auth/filter-users?role=.
func (h *AuthHandler) FilterUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.FilterUsers(r.URL.Query().Get("role"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// AddUser handles POST /auth/add-user.
func (h *AuthHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req models.AdminUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Service.AddUser(&req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User added successfully")
}

// EditUser handles PUT /auth/edit-user.
func (h *AuthHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	var req models.AdminUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Service.EditUser(&req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User updated successfully")
}

// DeleteUser handles DELETE /auth/delete-user?email=.
func (h *AuthHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteUser(r.URL.Query().Get("email")); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "User deleted successfully")
}

// UpdateProfile handles POST /auth/update-profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.Service.UpdateProfile(&req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Profile updated successfully")
}

// Categories dispatches GET/PUT /auth/categories.
func (h *AuthHandler) Categories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		categories, err := h.Service.GetCategories()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, categories)

	case http.MethodPut:
		var payload map[string][]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
			return
		}
		if err := h.Service.UpdateCategories(payload); err != nil {
			writeError(w, err)
			return
		}
		writeMessage(w, http.StatusOK, "Categories updated successfully")

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
