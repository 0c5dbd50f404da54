package dto

type CreateItemInput struct {
	Name string `json:"name" binding:"required"`
}

type UpdateItemInput struct {
	Name      *string `json:"name"`
	Completed *bool   `json:"completed"`
}
