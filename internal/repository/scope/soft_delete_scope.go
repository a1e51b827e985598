package scope

import "gorm.io/gorm"

// ExcludeSoftDeleted keeps only rows whose deleted flag is still false.
func ExcludeSoftDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted = ?", false)
}
