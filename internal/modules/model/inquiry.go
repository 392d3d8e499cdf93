package model

// Inquiry is a visitor message, optionally about a listing. The property
// reference is nulled (not cascaded) when the listing goes away, so the
// inquiry itself survives.
type Inquiry struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	PropertyID *uint   `gorm:"index" json:"property_id"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone      string  `gorm:"type:varchar(20);not null" json:"phone"`
	Message    string  `gorm:"type:varchar(2000);not null" json:"message"`

	Property *Property `gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Inquiry) TableName() string { return "inquiries" }
