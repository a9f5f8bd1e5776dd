package models

import (
	"testing"
	"yatube/db"

	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, db.InitSQLite(":memory:"))
	require.NoError(t, Init())
	t.Cleanup(db.Close)
}

func createUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, "", "password123")
	require.NoError(t, err)
	return u
}

func createGroup(t *testing.T, slug string) Group {
	t.Helper()
	g, err := SaveGroup("Group "+slug, slug, "")
	require.NoError(t, err)
	return g
}

func createPost(t *testing.T, author User, text string, group *Group) Post {
	t.Helper()
	p := Post{Text: text, AuthorID: author.ID}
	if group != nil {
		p.GroupID = &group.ID
	}
	require.NoError(t, CreatePost(&p))
	return p
}

func postIDs(posts []Post) []uint64 {
	ids := make([]uint64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}
