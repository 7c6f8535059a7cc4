package domain

import "github.com/google/uuid"

// User is owned by the caller. Seats keep their own copy of the value.
type User struct {
	ID   string
	Name string
}

func NewUser(name string) User {
	return User{ID: uuid.NewString(), Name: name}
}
