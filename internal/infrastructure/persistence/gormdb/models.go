package gormdb

// UserModel é o model GORM para usuários
type UserModel struct {
	ID            string  `gorm:"type:varchar(36);primaryKey"`
	Name          string  `gorm:"type:varchar(255);not null"`
	Username      string  `gorm:"type:varchar(30);uniqueIndex;not null"`
	Email         string  `gorm:"type:varchar(254);uniqueIndex;not null"`
	CPF           string  `gorm:"column:cpf;type:varchar(11);uniqueIndex;not null"`
	BirthDate     string  `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	PasswordHash  string  `gorm:"column:password;type:varchar(255);not null"`
	Role          string  `gorm:"type:varchar(20);not null;index"`
	ProfilePicURL *string `gorm:"type:varchar(1024)"`
	CreatedAt     int64   `gorm:"autoCreateTime:nano;index"`
	UpdatedAt     int64   `gorm:"autoUpdateTime:nano"`
}

func (UserModel) TableName() string {
	return "users"
}

// ProfessionalModel é o model GORM para profissionais
type ProfessionalModel struct {
	ID              string `gorm:"type:varchar(36);primaryKey"`
	UserID          string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Bio             string `gorm:"type:text"`
	PhoneNumber     string `gorm:"type:varchar(20);uniqueIndex;not null"`
	ProRegistration string `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt       int64  `gorm:"autoCreateTime:nano;index"`
	UpdatedAt       int64  `gorm:"autoUpdateTime:nano"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (ProfessionalModel) TableName() string {
	return "professionals"
}

// ProPostModel é o model GORM para posts
type ProPostModel struct {
	ID             string   `gorm:"type:varchar(36);primaryKey"`
	ProfessionalID string   `gorm:"type:varchar(36);not null;index"`
	Title          string   `gorm:"type:varchar(255);not null"`
	Content        string   `gorm:"type:text;not null"`
	ImageURLs      []string `gorm:"column:image_urls;type:text;serializer:json"`
	CreatedAt      int64    `gorm:"autoCreateTime:nano;index"`
	UpdatedAt      int64    `gorm:"autoUpdateTime:nano"`

	Professional *ProfessionalModel `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE"`
}

func (ProPostModel) TableName() string {
	return "pro_posts"
}

// allModels na ordem de criação das tabelas (dependências primeiro)
func allModels() []any {
	return []any{&UserModel{}, &ProfessionalModel{}, &ProPostModel{}}
}
