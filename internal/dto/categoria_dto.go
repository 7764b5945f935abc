package dto

type CategoriaRequest struct {
	Nome string `json:"name" validate:"required,min=2,max=60"`
}

type CategoriaResponse struct {
	ID   string `json:"id"`
	Nome string `json:"name"`
}
