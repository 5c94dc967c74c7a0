package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// User represents a principal row. Administrators carry no company;
// company owners belong to exactly one company.
type User struct {
	UserID       uuid.UUID  `gorm:"column:user_id;primaryKey"`
	CompanyID    *uuid.UUID `gorm:"column:company_id"`
	Name         string     `gorm:"column:name;not null"`
	Email        string     `gorm:"column:email;not null"`
	Role         string     `gorm:"column:role;not null"`
	APIKeyDigest []byte     `gorm:"column:api_key_digest;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

// GenerateAPIKey returns a new random API key. The key is shown to the
// caller once; only its digest is persisted.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
