package models

import "database/sql"

// Record is one row of the source catalog. Entity holds the raw multi-valued
// name cell (cast or director), Attribute the raw country cell. Either may be null.
type Record struct {
	Entity    sql.NullString
	Attribute sql.NullString
}

// NewRecord builds a record from raw cells; a nil pointer marks a null cell.
func NewRecord(entity, attribute *string) Record {
	var r Record
	if entity != nil {
		r.Entity = sql.NullString{String: *entity, Valid: true}
	}
	if attribute != nil {
		r.Attribute = sql.NullString{String: *attribute, Valid: true}
	}
	return r
}
