package types

// Type es una entrada del vocabulario de categorías ("fire", "water", ...).
// Name es único y distingue mayúsculas.
type Type struct {
	ID   string
	Name string
}
