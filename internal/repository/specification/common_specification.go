package specification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByID filters by primary key.
type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

// ByMemberID filters by the owning member.
type ByMemberID struct {
	MemberID uuid.UUID
}

func (s ByMemberID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("member_id = ?", s.MemberID)
}

// OrderBy applies ordering.
type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return db.Order(fmt.Sprintf("%s %s", s.Field, direction))
}

// Limit caps the result set size.
type Limit struct {
	Limit int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.Limit)
}

// OlderThan selects rows whose given timestamp column is before the cutoff.
type OlderThan struct {
	Field  string
	Cutoff time.Time
}

func (s OlderThan) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s < ?", s.Field), s.Cutoff)
}

// FilterBy is a generic equality filter.
type FilterBy struct {
	Field string
	Value interface{}
}

func (s FilterBy) Apply(db *gorm.DB) *gorm.DB {
	query := fmt.Sprintf("%s = ?", s.Field)
	return db.Where(query, s.Value)
}

func Filter(field string, value interface{}) Specification {
	return FilterBy{Field: field, Value: value}
}
