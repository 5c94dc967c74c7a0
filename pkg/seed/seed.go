package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"tenantgate/pkg/server/store"
)

// Person is a user entry in a seed document.
type Person struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Company is a company entry with its owners.
type Company struct {
	Name   string   `yaml:"name"`
	Owners []Person `yaml:"owners"`
}

// Document is a declarative bootstrap document. Applying it is
// idempotent: entries that already exist are skipped.
type Document struct {
	Administrators []Person  `yaml:"administrators"`
	Companies      []Company `yaml:"companies"`
}

// Result reports what an Apply run did. APIKeys maps the email of every
// newly created user to its one-time API key; keys for pre-existing
// users are not recoverable.
type Result struct {
	Created int
	Skipped int
	APIKeys map[string]string
}

// Parse reads a seed document from a reader.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ParseFile reads a seed document from a file.
func ParseFile(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed document: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Parse(file)
}

func (d *Document) validate() error {
	for _, admin := range d.Administrators {
		if admin.Email == "" {
			return fmt.Errorf("administrator %q is missing an email", admin.Name)
		}
	}
	for _, company := range d.Companies {
		if company.Name == "" {
			return errors.New("company with empty name in seed document")
		}
		for _, owner := range company.Owners {
			if owner.Email == "" {
				return fmt.Errorf("owner %q of company %q is missing an email", owner.Name, company.Name)
			}
		}
	}
	return nil
}

// Apply creates the document's administrators, companies and owners
// through the stores. Existing companies are matched by name, existing
// users by email.
func Apply(doc *Document, companies store.CompaniesStore, users store.UsersStore) (*Result, error) {
	result := &Result{APIKeys: make(map[string]string)}

	for _, admin := range doc.Administrators {
		_, apiKey, err := users.CreateAdministrator(store.Profile{
			Name:  admin.Name,
			Email: admin.Email,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				result.Skipped++
				continue
			}
			return nil, fmt.Errorf("failed to create administrator %s: %w", admin.Email, err)
		}
		result.Created++
		result.APIKeys[admin.Email] = apiKey
	}

	for _, entry := range doc.Companies {
		company, err := companies.FetchCompanyByName(entry.Name)
		switch {
		case err == nil:
			result.Skipped++
		case errors.Is(err, store.ErrNotFound):
			company, err = companies.CreateCompany(entry.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to create company %s: %w", entry.Name, err)
			}
			result.Created++
		default:
			return nil, fmt.Errorf("failed to look up company %s: %w", entry.Name, err)
		}

		for _, owner := range entry.Owners {
			_, apiKey, err := users.CreateCompanyUser(company.ID, store.Profile{
				Name:  owner.Name,
				Email: owner.Email,
			})
			if err != nil {
				if errors.Is(err, store.ErrDuplicateEmail) {
					result.Skipped++
					continue
				}
				return nil, fmt.Errorf("failed to create owner %s: %w", owner.Email, err)
			}
			result.Created++
			result.APIKeys[owner.Email] = apiKey
		}
	}

	return result, nil
}
