package req

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" validate:"required,phone"`
	Address  string `json:"address" form:"address" validate:"required,min=5,max=200"`
	Password string `json:"password" form:"password"`

	// ProfileImage is never read from the form. The upload middleware stores
	// the file first and the handler fills this in from request locals.
	ProfileImage string `json:"-" form:"-"`
}
