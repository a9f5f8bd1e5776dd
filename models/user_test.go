package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserCreateAndLogin(t *testing.T) {
	setupDB(t)
	u, err := UserCreate("leo", "Leo Tolstoy", "war and peace")
	require.NoError(t, err)
	require.Equal(t, "leo", u.String())
	require.Equal(t, "Leo Tolstoy", u.DisplayName())
	require.NotEqual(t, "war and peace", u.Password)

	_, err = UserCreate("leo", "", "other password")
	require.ErrorIs(t, err, ErrUsernameTaken)

	logged, err := UserLogin("leo", "war and peace")
	require.NoError(t, err)
	require.Equal(t, u.ID, logged.ID)

	_, err = UserLogin("leo", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = UserLogin("nobody", "war and peace")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	setupDB(t)
	plain := createUser(t, "plain")
	admin, err := EnsureAdmin("root", "secret-password")
	require.NoError(t, err)

	loaded, err := UserByID(admin.ID)
	require.NoError(t, err)
	require.True(t, loaded.HasPermission(PermissionAdmin))
	require.Equal(t, []int{int(PermissionAdmin)}, loaded.GetPermissions())

	// running it again resets the password and keeps a single grant
	_, err = EnsureAdmin("root", "new-password")
	require.NoError(t, err)
	_, err = UserLogin("root", "new-password")
	require.NoError(t, err)
	loaded, err = UserByID(admin.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Grants, 1)

	loaded, err = UserByID(plain.ID)
	require.NoError(t, err)
	require.False(t, loaded.HasPermissions([]Permission{PermissionAdmin}))
	require.True(t, loaded.HasPermissions(nil))
}

func TestDeleteUserCascades(t *testing.T) {
	setupDB(t)
	leo := createUser(t, "leo")
	tom := createUser(t, "tom")
	leoPost := createPost(t, leo, "by leo", nil)
	tomPost := createPost(t, tom, "by tom", nil)
	require.NoError(t, CreateComment(&Comment{PostID: leoPost.ID, AuthorID: tom.ID, Text: "tom on leo"}))
	require.NoError(t, CreateComment(&Comment{PostID: tomPost.ID, AuthorID: leo.ID, Text: "leo on tom"}))
	require.NoError(t, CreateComment(&Comment{PostID: tomPost.ID, AuthorID: tom.ID, Text: "tom on tom"}))
	require.NoError(t, FollowAuthor(leo.ID, tom.ID))
	require.NoError(t, FollowAuthor(tom.ID, leo.ID))

	require.NoError(t, DeleteUser(leo.ID))

	_, err := UserByID(leo.ID)
	require.ErrorIs(t, err, ErrNotFound)
	posts, err := ListAll()
	require.NoError(t, err)
	require.Equal(t, []uint64{tomPost.ID}, postIDs(posts))
	comments, err := ListComments(tomPost.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	require.Equal(t, "tom on tom", comments[0].Text)
	count, err := CountComments()
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
	count, err = CountFollowing(tom.ID)
	require.NoError(t, err)
	require.Zero(t, count)

	require.ErrorIs(t, DeleteUser(leo.ID), ErrNotFound)
}
