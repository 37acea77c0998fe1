package models

import "github.com/uptrace/bun"

// User is an operator account with a bcrypt-hashed password. Admin users
// may edit competitions, drivers and teams.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID       int    `bun:"id,pk,autoincrement" json:"id"`
	Username string `bun:"username,notnull,unique" json:"username"`
	Password string `bun:"password,notnull" json:"-"`
	Admin    bool   `bun:"admin,notnull,default:false" json:"admin"`
}
