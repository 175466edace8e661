package ots

// Metadata is the in-memory representation of an object's attributes,
// whether read from individual GATT characteristics (client.go's getters)
// or parsed out of a directory listing entry (directory.go) (spec.md §3).
type Metadata struct {
	ID            *ObjectID
	Name          string
	Type          UUID
	CurrentSize   *uint
	AllocatedSize *uint
	FirstCreated  *DateTime
	LastModified  *DateTime
	Properties    PropertyFlags
}
