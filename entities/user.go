package entities

import "time"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Farm      string    `json:"farm"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
