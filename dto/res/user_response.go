package res

type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IsVerified   bool   `json:"isVerified"`
	ProfileImage string `json:"profileImage"`
	CreatedAt    string `json:"createdAt"`
}
