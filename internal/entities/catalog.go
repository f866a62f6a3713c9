// Package entities defines the catalog records and their derived fields.
//
// Derived values (display name, canonical URL, formatted dates) are pure
// functions of the stored fields: they read only the receiver and never
// consult ambient state.
package entities

import (
	"fmt"
	"time"
)

// displayDateFormat is the human-readable date format used across views,
// e.g. "Dec 16, 1775".
const displayDateFormat = "Jan 2, 2006"

// InstanceStatus describes where a book copy currently is.
type InstanceStatus string

const (
	StatusAvailable   InstanceStatus = "Available"
	StatusMaintenance InstanceStatus = "Maintenance"
	StatusLoaned      InstanceStatus = "Loaned"
	StatusReserved    InstanceStatus = "Reserved"
)

// InstanceStatuses lists every valid status, in form-display order.
var InstanceStatuses = []InstanceStatus{
	StatusAvailable,
	StatusMaintenance,
	StatusLoaned,
	StatusReserved,
}

func (s InstanceStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusLoaned, StatusReserved:
		return true
	}
	return false
}

func (s InstanceStatus) String() string {
	return string(s)
}

// Author is a person who wrote one or more books. An author may not be
// deleted while any Book references it.
type Author struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FirstName   string     `gorm:"size:100" json:"first_name"`
	FamilyName  string     `gorm:"index;size:100" json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	DateOfDeath *time.Time `json:"date_of_death,omitempty"`
	Books       []Book     `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Name returns "<family>, <first>", or the empty string when either part
// is missing.
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return fmt.Sprintf("%s, %s", a.FamilyName, a.FirstName)
}

// URL returns the canonical path for this author's detail page.
func (a Author) URL() string {
	return fmt.Sprintf("/catalog/author/%d", a.ID)
}

// BirthDateFormatted returns the date of birth for display, or "" when unset.
func (a Author) BirthDateFormatted() string {
	if a.DateOfBirth == nil {
		return ""
	}
	return a.DateOfBirth.Format(displayDateFormat)
}

// DeathDateFormatted returns the date of death for display, or "" when unset.
func (a Author) DeathDateFormatted() string {
	if a.DateOfDeath == nil {
		return ""
	}
	return a.DateOfDeath.Format(displayDateFormat)
}

// Lifespan returns "birth - death" with either side blank when unknown.
func (a Author) Lifespan() string {
	return a.BirthDateFormatted() + " - " + a.DeathDateFormatted()
}

// Genre is a classification a book can belong to. A genre may not be
// deleted while any Book references it.
type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:100" json:"name"`
	Books     []Book    `gorm:"many2many:book_genres;" json:"books,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (g Genre) URL() string {
	return fmt.Sprintf("/catalog/genre/%d", g.ID)
}

// Book is a published work. It references exactly one Author and any number
// of Genres, and may not be deleted while any BookInstance references it.
type Book struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"index;size:512" json:"title"`
	Summary   string         `gorm:"type:text" json:"summary"`
	AuthorID  uint           `gorm:"index" json:"author_id"`
	Author    Author         `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Genres    []Genre        `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	Instances []BookInstance `gorm:"foreignKey:BookID" json:"instances,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (b Book) URL() string {
	return fmt.Sprintf("/catalog/book/%d", b.ID)
}

// BookInstance is a physical copy of a book held by the library.
type BookInstance struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	BookID    uint           `gorm:"index" json:"book_id"`
	Book      Book           `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Imprint   string         `gorm:"size:256" json:"imprint"`
	Status    InstanceStatus `gorm:"size:20;default:'Maintenance'" json:"status"`
	DueBack   *time.Time     `json:"due_back,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (i BookInstance) URL() string {
	return fmt.Sprintf("/catalog/bookinstance/%d", i.ID)
}

// DueBackFormatted returns the due date for display, or "" when unset.
func (i BookInstance) DueBackFormatted() string {
	if i.DueBack == nil {
		return ""
	}
	return i.DueBack.Format(displayDateFormat)
}

// Overdue reports whether this copy is out on loan past its due date.
// Instances without a due date are never overdue.
func (i BookInstance) Overdue(now time.Time) bool {
	return i.Status == StatusLoaned && i.DueBack != nil && i.DueBack.Before(now)
}
