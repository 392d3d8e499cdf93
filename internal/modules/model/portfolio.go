package model

type PortfolioProject struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description *string `gorm:"type:varchar(2000)" json:"description"`

	// PortfolioProject <-> ServiceProject
	ServiceProjects []ServiceProject `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"service_projects"`
}

func (PortfolioProject) TableName() string { return "portfolio_projects" }

type ServiceProject struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	PortfolioProjectID uint    `gorm:"not null;index" json:"portfolio_project_id"`
	Title              string  `gorm:"type:varchar(255);not null" json:"title"`
	Description        *string `gorm:"type:varchar(2000)" json:"description"`
	Location           *string `gorm:"type:varchar(255)" json:"location"`
	ContactEmail       *string `gorm:"type:varchar(255)" json:"contact_email"`
	ContactPhone       *string `gorm:"type:varchar(20)" json:"contact_phone"`

	// ServiceProject <-> PortfolioImage
	Images []PortfolioImage `gorm:"foreignKey:ServiceProjectID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"images"`
}

func (ServiceProject) TableName() string { return "service_projects" }

type PortfolioImage struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	ServiceProjectID uint   `gorm:"not null;index" json:"-"`
	URL              string `gorm:"type:varchar(500);not null" json:"url"`
}

func (PortfolioImage) TableName() string { return "portfolio_images" }
