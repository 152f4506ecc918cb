package specification

import "gorm.io/gorm"

// Specification applies a query predicate to a gorm query builder.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
