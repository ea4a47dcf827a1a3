// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attachment is the predicate function for attachment builders.
type Attachment func(*sql.Selector)

// Image is the predicate function for image builders.
type Image func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// SourceMap is the predicate function for sourcemap builders.
type SourceMap func(*sql.Selector)

// TableRaw is the predicate function for tableraw builders.
type TableRaw func(*sql.Selector)

// Unit is the predicate function for unit builders.
type Unit func(*sql.Selector)
