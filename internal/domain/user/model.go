package user

import "time"

type User struct {
	ID        string
	Login     string
	Password  string // bcrypt hash
	CreatedAt time.Time
}
