package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/api/dto"
	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/service"
)

type AuthHandler struct {
	sessionService service.ISessionService
}

func NewAuthHandler(sessionService service.ISessionService) *AuthHandler {
	if sessionService == nil {
		panic("sessionService cannot be nil")
	}
	return &AuthHandler{
		sessionService: sessionService,
	}
}

// @Summary admin login
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param credentials body dto.AdminLoginDTO true "admin credentials"
// @Success 200 {object} api.Response{data=dto.AdminSessionDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Router /admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, err)
		return
	}

	token, err := h.sessionService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, dto.AdminSessionDTO{Token: token}, nil)
}

// @Summary admin logout
// @Tags admin-auth
// @Success 200 {object} api.Response "success"
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 {
			token = parts[1]
		}
	}

	if err := h.sessionService.Logout(r.Context(), token); err != nil {
		writeServiceError(w, err)
		return
	}

	api.SuccessJSON(w, nil, nil)
}
