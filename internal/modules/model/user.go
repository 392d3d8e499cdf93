package model

// Role is an account role. Only two exist; every protected write across the
// API accepts both.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

type User struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Email          string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone          *string `gorm:"type:varchar(20)" json:"phone"`
	Role           Role    `gorm:"type:varchar(20);not null" json:"role"`
	HashedPassword string  `gorm:"type:varchar(255);not null" json:"-"`
}

func (User) TableName() string { return "users" }
