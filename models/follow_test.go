package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFollowIsIdempotent(t *testing.T) {
	setupDB(t)
	leo := createUser(t, "leo")
	tom := createUser(t, "tom")

	require.NoError(t, FollowAuthor(leo.ID, tom.ID))
	require.NoError(t, FollowAuthor(leo.ID, tom.ID))

	following, err := IsFollowing(leo.ID, tom.ID)
	require.NoError(t, err)
	require.True(t, following)
	count, err := CountFollowers(tom.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// not mutual
	following, err = IsFollowing(tom.ID, leo.ID)
	require.NoError(t, err)
	require.False(t, following)
}

func TestFollowSelfIsIgnored(t *testing.T) {
	setupDB(t)
	leo := createUser(t, "leo")
	require.NoError(t, FollowAuthor(leo.ID, leo.ID))
	following, err := IsFollowing(leo.ID, leo.ID)
	require.NoError(t, err)
	require.False(t, following)
	count, err := CountFollowing(leo.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestUnfollow(t *testing.T) {
	setupDB(t)
	leo := createUser(t, "leo")
	tom := createUser(t, "tom")

	// nothing to remove yet
	require.NoError(t, UnfollowAuthor(leo.ID, tom.ID))
	require.NoError(t, UnfollowUsername(leo.ID, "nobody"))

	require.NoError(t, FollowAuthor(leo.ID, tom.ID))
	require.NoError(t, UnfollowUsername(leo.ID, "tom"))
	following, err := IsFollowing(leo.ID, tom.ID)
	require.NoError(t, err)
	require.False(t, following)

	require.NoError(t, FollowAuthor(leo.ID, tom.ID))
	require.NoError(t, UnfollowAuthor(leo.ID, tom.ID))
	require.NoError(t, UnfollowAuthor(leo.ID, tom.ID))
	following, err = IsFollowing(leo.ID, tom.ID)
	require.NoError(t, err)
	require.False(t, following)
}

func TestListFollowedFeed(t *testing.T) {
	setupDB(t)
	leo := createUser(t, "leo")
	tom := createUser(t, "tom")
	ann := createUser(t, "ann")
	tomPost := createPost(t, tom, "by tom", nil)
	createPost(t, ann, "by ann", nil)
	tomLater := createPost(t, tom, "by tom again", nil)

	feed, err := ListFollowedFeed(leo.ID)
	require.NoError(t, err)
	require.Empty(t, feed)

	require.NoError(t, FollowAuthor(leo.ID, tom.ID))
	feed, err = ListFollowedFeed(leo.ID)
	require.NoError(t, err)
	require.Equal(t, []uint64{tomLater.ID, tomPost.ID}, postIDs(feed))
	require.Equal(t, "tom", feed[0].Author.Username)

	// ann doesn't follow anybody
	feed, err = ListFollowedFeed(ann.ID)
	require.NoError(t, err)
	require.Empty(t, feed)
}
