package model

// School is the tenant entity. Tenant-scoped queries take the school ID
// as an explicit parameter; nothing reads an ambient tenant.
//
// swagger:model School
type School struct {
	UUIDBase
	Name string `gorm:"size:255;not null;index" json:"name"`
	Code string `gorm:"size:64;unique;not null" json:"code"`
}

func (School) TableName() string {
	return "schools"
}
