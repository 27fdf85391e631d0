package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/handlers/dto"
	"github.com/rafabene/sunmile-backend/internal/services"
)

// LoginRecorder contabiliza tentativas de login
type LoginRecorder interface {
	LoginSucceeded()
	LoginFailed()
}

// AuthHandler lida com login, logout e dados do usuário autenticado
type AuthHandler struct {
	authService *services.AuthService
	logins      LoginRecorder
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logins LoginRecorder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logins:      logins,
	}
}

// Login troca email e senha por um token
//
//	@Summary	Login
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.LoginResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Failure	429		{object}	dto.ErrorResponse
//	@Router		/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, dto.BindingError(err))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if domainerrors.KindOf(err) == domainerrors.KindAuthentication {
			h.logins.LoginFailed()
		}
		respondError(c, err)
		return
	}

	h.logins.LoginSucceeded()
	c.JSON(http.StatusOK, dto.LoginResponse{
		Message:   dto.T(c, "message.login_success"),
		Token:     result.Token.Value,
		ExpiresAt: result.Token.ExpiresAt,
	})
}

// MeUser devolve o usuário do token (com o perfil profissional, se houver)
//
//	@Summary	Usuário autenticado
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ProfileResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/me/user [get]
func (h *AuthHandler) MeUser(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	user, professional, err := h.authService.MeUser(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user, professional))
}

// MeProfessional devolve o perfil profissional do chamador
//
//	@Summary	Profissional autenticado
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.ProfessionalResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/me/pro [get]
func (h *AuthHandler) MeProfessional(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	professional, err := h.authService.MeProfessional(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// Logout revoga o token usado na requisição
//
//	@Summary	Logout
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	401	{object}	dto.ErrorResponse
//	@Router		/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), identity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "message.logout_success")})
}
