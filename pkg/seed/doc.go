// Package seed loads declarative YAML bootstrap documents and applies
// them through the stores. A document lists administrators, companies
// and each company's owners; applying the same document twice is safe.
package seed
