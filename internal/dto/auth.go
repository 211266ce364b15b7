package dto

type ExchangeRequestDTO struct {
	Code string `json:"code" validate:"required"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SessionResponseDTO struct {
	ID       int    `json:"id" example:"1"`
	Name     string `json:"name" example:"athena"`
	Email    string `json:"email" example:"athena@example.com"`
	Avatar   string `json:"avatar,omitempty"`
	Role     string `json:"role" example:"USER"`
	Points   int    `json:"points" example:"500"`
	IsMember bool   `json:"is_member"`
}

type AuthResponseDTO struct {
	Token string             `json:"token"`
	User  SessionResponseDTO `json:"user"`
}
