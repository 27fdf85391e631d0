package entities

import (
	"strings"

	"github.com/rafabene/sunmile-backend/internal/domain/valueobjects"
)

// UserPatch descreve uma alteração parcial de User. Campos nil não mudam.
type UserPatch struct {
	Name          *string
	Username      *string
	Email         *string
	ProfilePicURL *string
}

// Effective remove campos vazios ou iguais ao estado atual, deixando
// apenas o que realmente muda.
func (p UserPatch) Effective(current *User) UserPatch {
	var out UserPatch
	if v, ok := changedText(p.Name, current.Name); ok {
		out.Name = &v
	}
	if v, ok := changedText(p.Username, current.Username); ok {
		out.Username = &v
	}
	if p.Email != nil {
		email := valueobjects.NormalizeEmail(*p.Email)
		if email != "" && email != current.Email.String() {
			out.Email = &email
		}
	}
	if p.ProfilePicURL != nil {
		url := strings.TrimSpace(*p.ProfilePicURL)
		if current.ProfilePicURL == nil || *current.ProfilePicURL != url {
			out.ProfilePicURL = &url
		}
	}
	return out
}

// IsEmpty indica que não há nada a aplicar
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Username == nil && p.Email == nil && p.ProfilePicURL == nil
}

// Apply retorna uma cópia de current com o patch aplicado; current não é alterado
func (p UserPatch) Apply(current User) (User, error) {
	next := current
	if p.Name != nil {
		next.Name = *p.Name
	}
	if p.Username != nil {
		next.Username = *p.Username
	}
	if p.Email != nil {
		email, err := valueobjects.NewEmail(*p.Email)
		if err != nil {
			return User{}, err
		}
		next.Email = email
	}
	if p.ProfilePicURL != nil {
		url := *p.ProfilePicURL
		next.ProfilePicURL = &url
	}
	return next, nil
}

// ProfessionalPatch altera o perfil profissional e os dados do usuário dono
type ProfessionalPatch struct {
	User        UserPatch
	Bio         *string
	PhoneNumber *string
}

// Effective mantém apenas as mudanças reais
func (p ProfessionalPatch) Effective(current *Professional) ProfessionalPatch {
	var out ProfessionalPatch
	if current.User != nil {
		out.User = p.User.Effective(current.User)
	}
	if p.Bio != nil && *p.Bio != current.Bio {
		bio := *p.Bio
		out.Bio = &bio
	}
	if v, ok := changedText(p.PhoneNumber, current.PhoneNumber); ok {
		out.PhoneNumber = &v
	}
	return out
}

// IsEmpty indica que não há nada a aplicar
func (p ProfessionalPatch) IsEmpty() bool {
	return p.User.IsEmpty() && p.Bio == nil && p.PhoneNumber == nil
}

// Apply retorna cópias do profissional e do usuário com o patch aplicado
func (p ProfessionalPatch) Apply(current Professional) (Professional, error) {
	next := current
	if current.User != nil {
		user, err := p.User.Apply(*current.User)
		if err != nil {
			return Professional{}, err
		}
		next.User = &user
	}
	if p.Bio != nil {
		next.Bio = *p.Bio
	}
	if p.PhoneNumber != nil {
		next.PhoneNumber = *p.PhoneNumber
	}
	return next, nil
}

// ProPostPatch altera título, conteúdo e imagens de um post
type ProPostPatch struct {
	Title     *string
	Content   *string
	ImageURLs *[]string
}

// Apply retorna uma cópia do post com o patch aplicado
func (p ProPostPatch) Apply(current ProPost) ProPost {
	next := current
	if p.Title != nil {
		next.Title = strings.TrimSpace(*p.Title)
	}
	if p.Content != nil {
		next.Content = strings.TrimSpace(*p.Content)
	}
	if p.ImageURLs != nil {
		next.ImageURLs = append([]string{}, (*p.ImageURLs)...)
	}
	return next
}

func changedText(candidate *string, current string) (string, bool) {
	if candidate == nil {
		return "", false
	}
	v := strings.TrimSpace(*candidate)
	if v == "" || v == current {
		return "", false
	}
	return v, true
}
