package model

// Course is a progressive track of levels authored by admins. A nil
// TenantID means the course is global; otherwise it is visible only to
// the owning school.
//
// swagger:model Course
type Course struct {
	UUIDBase
	Name        string  `gorm:"size:255;not null;index" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	IsActive    bool    `gorm:"default:true;index" json:"isActive"`
	TenantID    *string `gorm:"type:varchar(36);index" json:"tenantId,omitempty"`

	Levels  []CourseLevel `gorm:"foreignKey:CourseID" json:"levels,omitempty"`
	Careers []Career      `gorm:"foreignKey:CourseID" json:"careers,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Career is global content describing where a course can lead.
//
// swagger:model Career
type Career struct {
	UUIDBase
	CourseID    string `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func (Career) TableName() string {
	return "careers"
}
