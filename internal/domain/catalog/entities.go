// Package catalog holds the read-side reference data the checklist
// workflow depends on: templates and their questions, projects,
// production lines and users. These records are managed elsewhere, so
// the package exposes them as plain read structs instead of aggregates.
package catalog

import "time"

// Template is a checklist template header.
type Template struct {
	ID          uint
	Name        string
	Description string
	CreatedAt   time.Time
}

// Question belongs to exactly one template. The NOK point number of an
// answer is the 1-based position of its question within the template,
// ordered by ascending question ID.
type Question struct {
	ID         uint
	TemplateID uint
	Text       string
	Category   string
}

// Project is a customer project checklists can be filed against.
type Project struct {
	ID   uint
	Name string
	Code string
}

// Line is a production line on the factory floor.
type Line struct {
	ID        uint
	Name      string
	ProjectID *uint
}

// User mirrors the identity store rows referenced by checklists.
type User struct {
	ID       uint
	Username string
	FullName string
	Role     string
}
