// Package entities contains core business entities.
package entities

// User is a registered owner of exercise entries.
type User struct {
	ID       string
	Username string
}

// DeleteResult reports the outcome of a bulk wipe.
type DeleteResult struct {
	Deleted int64
}
