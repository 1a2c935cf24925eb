package types

type CreateTagRequest struct {
	Name string `json:"name" form:"name" binding:"required"`
}
