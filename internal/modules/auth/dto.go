package auth

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=15"`
	Surname  string `json:"surname" binding:"required,min=2,max=15"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ClientPublic struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Role         string `json:"role"`
	DepartmentID *int64 `json:"department_id,omitempty"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=15"`
	Surname string `json:"surname" binding:"required,min=2,max=15"`
}
