package models

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"yatube/db"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200);not null"`
	Slug        string `gorm:"type:varchar(50);index:uniq_slug,unique;not null"`
	Description string `gorm:"type:text"`
}

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func (g Group) String() string {
	return g.Title
}

func GroupByID(id uint64) (g Group, err error) {
	err = db.Instance.First(&g, id).Error
	return g, notFound(err, "group", id)
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return g, notFound(err, "group", slug)
}

func ListGroups() (groups []Group, err error) {
	err = db.Instance.Order("title ASC").Find(&groups).Error
	return
}

// SaveGroup creates the group or updates the title and description of the one with the same slug
func SaveGroup(title, slug, description string) (g Group, err error) {
	slug = strings.TrimSpace(slug)
	if !slugPattern.MatchString(slug) {
		return g, fmt.Errorf("%q: %w", slug, ErrInvalidSlug)
	}
	g.Slug = slug
	err = db.Instance.
		Where(Group{Slug: slug}).
		Assign(Group{Title: strings.TrimSpace(title), Description: description}).
		FirstOrCreate(&g).Error
	return
}

// DeleteGroup orphans the group's posts (they stay in the global and author feeds) and deletes it
func DeleteGroup(id uint64) error {
	return db.Instance.Transaction(func(tx *gorm.DB) error {
		var group Group
		if err := tx.First(&group, id).Error; err != nil {
			return notFound(err, "group", id)
		}
		if err := tx.Model(&Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&group).Error
	})
}

type groupsFile struct {
	Groups []struct {
		Title       string `yaml:"title"`
		Slug        string `yaml:"slug"`
		Description string `yaml:"description"`
	} `yaml:"groups"`
}

// LoadGroups creates/updates groups from a YAML document like:
//
//	groups:
//	  - title: Cats
//	    slug: cats
//	    description: Everything about cats
func LoadGroups(reader io.Reader) (groups []Group, err error) {
	var file groupsFile
	if err = yaml.NewDecoder(reader).Decode(&file); err != nil && err != io.EOF {
		return nil, err
	}
	for _, g := range file.Groups {
		group, err := SaveGroup(g.Title, g.Slug, g.Description)
		if err != nil {
			return groups, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}
