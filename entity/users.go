package entity

type User struct {
	BaseEntity
	Name         string `json:"name" gorm:"type:varchar(50)"`
	Email        string `json:"email" gorm:"unique;type:varchar(100)"`
	Password     string `json:"-" gorm:"type:varchar(255)"`
	Phone        string `json:"phone" gorm:"unique;type:varchar(20)"`
	Address      string `json:"address" gorm:"type:varchar(200)"`
	IsVerified   bool   `json:"isVerified" gorm:"default:false"`
	ProfileImage string `json:"profileImage" gorm:"type:text"`
}
