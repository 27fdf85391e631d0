package entities

import "time"

// ProPost é uma publicação de um profissional
type ProPost struct {
	ID             string
	ProfessionalID string
	Title          string
	Content        string
	ImageURLs      []string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Professional (com User) é carregado nas leituras com join
	Professional *Professional
}

// OwnerID retorna o usuário dono do post (via profissional).
// Vazio quando o profissional não foi carregado.
func (p *ProPost) OwnerID() string {
	if p.Professional == nil {
		return ""
	}
	return p.Professional.UserID
}
