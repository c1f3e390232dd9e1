package tenants

import "strings"

// Tenant is an organization registered with the integrations API.
// Its Slug is the path prefix that selects the tenant's namespace in API URLs.
type Tenant struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"is_active"`
}

// Input carries the writable organization fields
type Input struct {
	Name     string `json:"name" validate:"required,min=2"`
	Slug     string `json:"slug" validate:"required,min=3"`
	IsActive bool   `json:"is_active"`
}

// NormalizeSlug trims and lower-cases a slug typed into a form
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
