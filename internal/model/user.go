package model

import "golang.org/x/crypto/bcrypt"

// Staff roles. The shop only distinguishes the admin from the sellers.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User represents an authenticated staff member.
type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	FullName string `gorm:"type:varchar(255)" json:"full_name" validate:"required"`
	Role     string `gorm:"type:varchar(20);default:seller" json:"role" validate:"required,oneof=admin seller"`
	Avatar   string `gorm:"type:text" json:"avatar"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// ToSender converts a user into the chat sender snapshot.
func (u *User) ToSender() ChatSender {
	return ChatSender{
		ID:     u.ID.String(),
		Name:   u.FullName,
		Role:   u.Role,
		Avatar: u.Avatar,
	}
}
