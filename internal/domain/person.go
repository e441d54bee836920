package domain

import (
	"errors"
	"time"
)

// ErrDocumentAlreadyExists indicates that a person with the given document already exists.
var ErrDocumentAlreadyExists = errors.New("person document already exists")

// Person holds the data of an account owner.
type Person struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePersonParams is the input data to create a person.
type CreatePersonParams struct {
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	BirthDate time.Time `json:"birth_date"`
}
