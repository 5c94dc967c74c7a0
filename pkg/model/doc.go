// Package model defines the database models for tenantgate.
//
// This package contains GORM models that map to the tenantgate
// PostgreSQL schema.
//
// # Core Models
//
//   - Company: a tenant that owns company users
//   - User: a principal row; administrators have no company, company
//     owners belong to exactly one company
//
// # Database Schema
//
// The database uses PostgreSQL with two tables:
//
//   - companies: tenant records
//   - users: all principals, with a global unique constraint on email
//     and a foreign key scoping company owners to their company
package model
