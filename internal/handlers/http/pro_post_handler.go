package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/sunmile-backend/internal/handlers/dto"
	"github.com/rafabene/sunmile-backend/internal/services"
)

// ProPostHandler lida com os posts dos profissionais
type ProPostHandler struct {
	postService *services.ProPostService
}

// NewProPostHandler cria um novo ProPostHandler
func NewProPostHandler(postService *services.ProPostService) *ProPostHandler {
	return &ProPostHandler{
		postService: postService,
	}
}

// CreateProPost publica um post do profissional autenticado
//
//	@Summary	Criar post
//	@Tags		pro-posts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		dto.CreateProPostRequest	true	"Post"
//	@Success	201		{object}	dto.ProPostResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Router		/pro-posts [post]
func (h *ProPostHandler) CreateProPost(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateProPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, dto.BindingError(err))
		return
	}

	post, err := h.postService.Create(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProPostResponse(post))
}

// ListProPosts lista todos os posts com autor
//
//	@Summary	Listar posts
//	@Tags		pro-posts
//	@Produce	json
//	@Success	200	{array}	dto.ProPostResponse
//	@Router		/pro-posts [get]
func (h *ProPostHandler) ListProPosts(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProPostResponses(posts))
}

// GetProPost busca um post por ID
//
//	@Summary	Detalhar post
//	@Tags		pro-posts
//	@Produce	json
//	@Param		id	path		string	true	"ID do post"
//	@Success	200	{object}	dto.ProPostResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/pro-posts/{id} [get]
func (h *ProPostHandler) GetProPost(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProPostResponse(post))
}

// UpdateProPost altera título, conteúdo ou imagens
//
//	@Summary	Atualizar post
//	@Tags		pro-posts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"ID do post"
//	@Param		body	body		dto.UpdateProPostRequest	true	"Campos alterados"
//	@Success	200		{object}	dto.ProPostResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/pro-posts/{id} [put]
func (h *ProPostHandler) UpdateProPost(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateProPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, dto.BindingError(err))
		return
	}

	post, err := h.postService.Update(c.Request.Context(), identity, c.Param("id"), req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProPostResponse(post))
}

// DeleteProPost remove um post
//
//	@Summary	Remover post
//	@Tags		pro-posts
//	@Security	BearerAuth
//	@Param		id	path	string	true	"ID do post"
//	@Success	204
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/pro-posts/{id} [delete]
func (h *ProPostHandler) DeleteProPost(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
