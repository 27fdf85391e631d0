package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sunmile-backend/internal/handlers/dto"
	"github.com/rafabene/sunmile-backend/internal/services"
)

// ProfessionalHandler lida com o cadastro e o perfil de profissionais
type ProfessionalHandler struct {
	professionalService *services.ProfessionalService
}

// NewProfessionalHandler cria um novo ProfessionalHandler
func NewProfessionalHandler(professionalService *services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalService: professionalService,
	}
}

// CreateProfessional cadastra usuário (role pro) e perfil juntos
//
//	@Summary	Cadastrar profissional
//	@Tags		professionals
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreateProfessionalRequest	true	"Dados do usuário e do perfil"
//	@Success	201		{object}	dto.ProfessionalResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/professionals [post]
func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var req dto.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, dto.BindingError(err))
		return
	}

	professional, err := h.professionalService.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProfessionalResponse(professional))
}

// ListProfessionals lista os profissionais com seus usuários
//
//	@Summary	Listar profissionais
//	@Tags		professionals
//	@Produce	json
//	@Success	200	{array}	dto.ProfessionalResponse
//	@Router		/professionals [get]
func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	professionals, err := h.professionalService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponses(professionals))
}

// GetProfessional busca um profissional por ID
//
//	@Summary	Detalhar profissional
//	@Tags		professionals
//	@Produce	json
//	@Param		id	path		string	true	"ID do profissional"
//	@Success	200	{object}	dto.ProfessionalResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/professionals/{id} [get]
func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	professional, err := h.professionalService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// UpdateProfessional altera perfil e dados do usuário dono
//
//	@Summary	Atualizar profissional
//	@Tags		professionals
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"ID do profissional"
//	@Param		body	body		dto.UpdateProfessionalRequest	true	"Campos alterados"
//	@Success	200		{object}	dto.ProfessionalResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/professionals/{id} [put]
func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, dto.BindingError(err))
		return
	}

	professional, err := h.professionalService.Update(c.Request.Context(), identity, c.Param("id"), req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

// DeleteProfessional remove posts, perfil e o usuário dono
//
//	@Summary	Remover profissional
//	@Tags		professionals
//	@Security	BearerAuth
//	@Param		id	path	string	true	"ID do profissional"
//	@Success	204
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/professionals/{id} [delete]
func (h *ProfessionalHandler) DeleteProfessional(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.professionalService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
