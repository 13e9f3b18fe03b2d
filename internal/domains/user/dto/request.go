package dto

type UserRegisterRequest struct {
	Username     string `json:"username" validate:"required,min=5,max=50"`
	Email        string `example:"string@gmail.com" json:"email" validate:"required,email"`
	MobileNumber string `json:"mobile_number" validate:"required,len=10"`
	FullName     string `json:"full_name" validate:"required,min=5,max=50"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required,oneof=Customer FieldOwner Admin"`
}

type UserLoginRequest struct {
	Email    string `example:"string@gmail.com" json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
