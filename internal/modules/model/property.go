package model

import "github.com/shopspring/decimal"

// Property is a listing. Type and Status are intentionally open strings,
// not enumerations; they are still exact-match filterable.
type Property struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	Name     string          `gorm:"type:varchar(255);not null" json:"name"`
	Type     string          `gorm:"type:varchar(50);not null" json:"type"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Location string          `gorm:"type:varchar(255);not null" json:"location"`
	Status   string          `gorm:"type:varchar(50);not null" json:"status"`

	// Property <-> PropertyImage: images die with the listing.
	Images []PropertyImage `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"images"`
}

func (Property) TableName() string { return "properties" }

type PropertyImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"not null;index" json:"-"`
	URL        string `gorm:"type:varchar(500);not null" json:"url"`
}

func (PropertyImage) TableName() string { return "property_images" }
