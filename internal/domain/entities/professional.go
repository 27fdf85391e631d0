package entities

import "time"

// Professional é a extensão 1:1 de um User com role "pro"
type Professional struct {
	ID              string
	UserID          string
	Bio             string
	PhoneNumber     string
	ProRegistration string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// User é carregado nas leituras com join
	User *User
}

// OwnerID retorna o usuário dono do perfil profissional
func (p *Professional) OwnerID() string {
	return p.UserID
}
