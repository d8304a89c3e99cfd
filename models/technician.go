package models

type Technician struct {
	Id          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Specialty   string `json:"specialty"`
	Active      bool   `json:"active" gorm:"default:true"`
}
