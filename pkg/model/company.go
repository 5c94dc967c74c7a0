package model

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a tenant that owns company users.
type Company struct {
	CompanyID uuid.UUID `gorm:"column:company_id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Company) TableName() string {
	return "companies"
}
