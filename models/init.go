package models

import (
	"yatube/db"
)

func Init() error {
	return db.Instance.AutoMigrate(
		&User{},
		&Grant{},
		&Group{},
		&Post{},
		&Comment{},
		&Follow{},
	)
}
