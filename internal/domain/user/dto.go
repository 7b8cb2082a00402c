package user

type RegisterInput struct {
	Email    string `form:"email" json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `form:"password" json:"password" binding:"required,min=6" example:"password123"`
	Name     string `form:"name" json:"name" binding:"required,max=100" example:"Alice Kim"`
	Position string `form:"position" json:"position" example:"Teaching Assistant"`
}

type LoginInput struct {
	Email    string `form:"email" json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `form:"password" json:"password" binding:"required" example:"password123"`
}

type UserDTO struct {
	ID               uint   `json:"id" example:"12"`
	Email            string `json:"email" example:"alice@example.com"`
	Name             string `json:"name" example:"Alice Kim"`
	Position         string `json:"position" example:"Teaching Assistant"`
	CanAccessFolders bool   `json:"can_access_folders" example:"false"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Position:         u.Position,
		CanAccessFolders: u.CanAccessFolders,
	}
}
