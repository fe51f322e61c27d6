package model

// Record is the contract every persisted model satisfies so the in-memory
// gateway can assign keys and enforce name uniqueness the way the database
// does.
type Record interface {
	PrimaryKey() int64
	SetPrimaryKey(id int64)
	UniqueName() string
}
