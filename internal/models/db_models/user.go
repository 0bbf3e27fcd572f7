package db_models

type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	FullName       string `gorm:"not null" json:"full_name"`
	PassportNumber string `gorm:"type:varchar(20)" json:"passport_number"`
	PhoneNumber    string `gorm:"type:varchar(20)" json:"phone_number"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Login          string `gorm:"uniqueIndex;not null" json:"login"`
	PasswordHash   string `gorm:"not null" json:"-"`
	Role           string `gorm:"type:varchar(16);default:user" json:"role"`
}
