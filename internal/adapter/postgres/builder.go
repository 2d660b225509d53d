package postgres

import "github.com/Masterminds/squirrel"

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// NullableID maps the zero UUID to SQL NULL. Reference data rows have no
// owning account.
func NullableID[T comparable](id T) *T {
	var zero T
	if id == zero {
		return nil
	}
	return &id
}
