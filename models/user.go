package models

import (
	"errors"
	"fmt"
	"yatube/db"
	"yatube/utils"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	Username  string  `gorm:"type:varchar(150);index:uniq_username,unique;not null"`
	Name      string  `gorm:"type:varchar(150)"`
	Password  string  `gorm:"type:varchar(128)"`
	PassSalt  string  `gorm:"type:varchar(200)"`
	Grants    []Grant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

const (
	saltSize = 60
)

func (u User) String() string {
	return u.Username
}

// DisplayName is the full name if the user has one
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func UserCreate(username, name, plainTextPassword string) (u User, err error) {
	u.Username = username
	u.Name = name
	u.SetPassword(plainTextPassword)
	if _, err = UserByUsername(username); err == nil {
		return User{}, fmt.Errorf("%s: %w", username, ErrUsernameTaken)
	}
	return u, db.Instance.Create(&u).Error
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(username, plainTextPassword string) (u User, err error) {
	result := db.Instance.Preload("Grants").First(&u, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, result.Error
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func UserByID(id uint64) (u User, err error) {
	err = db.Instance.Preload("Grants").First(&u, id).Error
	return u, notFound(err, "user", id)
}

func UserByUsername(username string) (u User, err error) {
	err = db.Instance.First(&u, "username = ?", username).Error
	return u, notFound(err, "user", username)
}

// EnsureAdmin creates the user if needed, resets its password and grants PermissionAdmin
func EnsureAdmin(username, plainTextPassword string) (u User, err error) {
	u, err = UserByUsername(username)
	if errors.Is(err, ErrNotFound) {
		u, err = UserCreate(username, "", plainTextPassword)
	} else if err == nil {
		u.SetPassword(plainTextPassword)
		err = db.Instance.Model(&u).Select("password", "pass_salt").Updates(&u).Error
	}
	if err != nil {
		return
	}
	grant := Grant{UserID: u.ID, Permission: PermissionAdmin}
	err = db.Instance.Where(&grant).FirstOrCreate(&grant).Error
	return
}

func (u *User) GetPermissions() []int {
	return lo.Map(u.Grants, func(grant Grant, _ int) int {
		return int(grant.Permission)
	})
}

func (u *User) HasPermission(required Permission) bool {
	return lo.ContainsBy(u.Grants, func(grant Grant) bool {
		return grant.Permission == required
	})
}

func (u *User) HasPermissions(required []Permission) bool {
	for _, permission := range required {
		if !u.HasPermission(permission) {
			return false
		}
	}
	return true
}

// DeleteUser removes the user and everything that references it:
// follow edges on both sides, their comments, comments on their posts, their posts and grants.
func DeleteUser(id uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		var user User
		if err := tx.First(&user, id).Error; err != nil {
			return notFound(err, "user", id)
		}
		postIDs := tx.Model(&Post{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("user_id = ? OR author_id = ?", id, id).Delete(&Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ? OR post_id IN (?)", id, postIDs).Delete(&Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&Post{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&Grant{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&user).Error; err != nil {
			return err
		}
		return nil
	})
}

func CountUsers() (count int64, err error) {
	err = db.Instance.Model(&User{}).Count(&count).Error
	return
}
