package dto

import (
	"time"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	"github.com/rafabene/sunmile-backend/internal/services"
)

// CreateProPostRequest representa um novo post. image_urls precisa ser
// uma lista de textos; qualquer outro tipo é rejeitado no bind.
type CreateProPostRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	ImageURLs []string `json:"image_urls"`
}

// ToInput converte a requisição para o input do serviço
func (r CreateProPostRequest) ToInput() services.CreateProPostInput {
	return services.CreateProPostInput{
		Title:     r.Title,
		Content:   r.Content,
		ImageURLs: r.ImageURLs,
	}
}

// UpdateProPostRequest altera apenas os campos presentes
type UpdateProPostRequest struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	ImageURLs *[]string `json:"image_urls"`
}

// ToPatch converte a requisição em patch
func (r UpdateProPostRequest) ToPatch() entities.ProPostPatch {
	return entities.ProPostPatch{
		Title:     r.Title,
		Content:   r.Content,
		ImageURLs: r.ImageURLs,
	}
}

// ProPostResponse é o post com o profissional e o usuário autor
type ProPostResponse struct {
	ID             string                `json:"id"`
	ProfessionalID string                `json:"professional_id"`
	Title          string                `json:"title"`
	Content        string                `json:"content"`
	ImageURLs      []string              `json:"image_urls"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	Professional   *ProfessionalResponse `json:"professional,omitempty"`
}

// ToProPostResponse converte a entidade ProPost
func ToProPostResponse(post *entities.ProPost) ProPostResponse {
	imageURLs := post.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	resp := ProPostResponse{
		ID:             post.ID,
		ProfessionalID: post.ProfessionalID,
		Title:          post.Title,
		Content:        post.Content,
		ImageURLs:      imageURLs,
		CreatedAt:      post.CreatedAt,
		UpdatedAt:      post.UpdatedAt,
	}
	if post.Professional != nil {
		professional := ToProfessionalResponse(post.Professional)
		resp.Professional = &professional
	}
	return resp
}

// ToProPostResponses converte uma lista de posts
func ToProPostResponses(posts []*entities.ProPost) []ProPostResponse {
	responses := make([]ProPostResponse, len(posts))
	for i, post := range posts {
		responses[i] = ToProPostResponse(post)
	}
	return responses
}
