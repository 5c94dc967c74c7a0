// Package gorm implements the tenantgate store interfaces using GORM
// against PostgreSQL.
package gorm
