package user

import util "github.com/saulo-duarte/menteviva-api/internal/utils"

type RegisterDTO struct {
	FullName        string    `json:"full_name"`
	CPF             string    `json:"cpf"`
	BirthDate       util.Date `json:"birth_date"`
	Whatsapp        string    `json:"whatsapp"`
	Email           string    `json:"email"`
	Password        string    `json:"password"`
	ConfirmPassword string    `json:"confirm_password"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileDTO struct {
	AvatarURL *string `json:"avatar_url"`
	Whatsapp  *string `json:"whatsapp"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
