package user

type CreateUserInput struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=150" example:"alice"`
	Password string `json:"password" form:"password" binding:"required,min=6" example:"password123"`
}

type TokenRequest struct {
	Username string `json:"username" form:"username" binding:"required" example:"alice"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// UserDTO is the public shape of an account, also used for project assignees.
type UserDTO struct {
	ID       uint   `json:"id" example:"2"`
	Username string `json:"username" example:"bob"`
}

func ToDTO(u User) UserDTO {
	return UserDTO{ID: u.ID, Username: u.Username}
}

func ToDTOs(users []User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToDTO(u))
	}
	return out
}
