package user

import (
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/menteviva-api/internal/utils"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"type:text;not null" json:"full_name"`
	CPF       string    `gorm:"column:cpf;type:text;not null" json:"cpf"`
	BirthDate util.Date `gorm:"type:date" json:"birth_date"`
	Whatsapp  string    `gorm:"type:text" json:"whatsapp"`
	Email     string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
