// Package db provides database connection utilities for tenantgate.
package db
