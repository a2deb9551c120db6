package dao_test

import (
	"Engage/dao"
	"Engage/pkg/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentTagDAO_TagNamesByContentIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	alice := testutil.CreateAuthor(t, db, "alice", 1)
	c1 := testutil.CreateContent(t, db, alice, "c1", testutil.Counters{})
	c2 := testutil.CreateContent(t, db, alice, "c2", testutil.Counters{})
	c3 := testutil.CreateContent(t, db, alice, "c3", testutil.Counters{})

	music := testutil.CreateTag(t, db, "music")
	sports := testutil.CreateTag(t, db, "sports")
	testutil.TagContent(t, db, c1, sports, music)
	testutil.TagContent(t, db, c2, music)
	testutil.TagContent(t, db, c3, sports)

	d := dao.NewContentTagDAO(db)

	names, err := d.TagNamesByContentIDs(ctx, []uint64{c1.ID, c2.ID})
	require.NoError(t, err)
	assert.Equal(t, map[uint64][]string{
		c1.ID: {"sports", "music"},
		c2.ID: {"music"},
	}, names)

	names, err = d.TagNamesByContentIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCategoryDAO_ListWithTags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	music := testutil.CreateTag(t, db, "music")
	sports := testutil.CreateTag(t, db, "sports")
	news := testutil.CreateTag(t, db, "news")
	testutil.CreateCategory(t, db, "entertainment", news, music)
	testutil.CreateCategory(t, db, "empty")
	testutil.CreateCategory(t, db, "outdoor", sports)

	categories, err := dao.NewCategoryDAO(db).ListWithTags(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.Equal(t, "entertainment", categories[0].Name)
	require.Len(t, categories[0].Tags, 2)
	assert.Equal(t, "music", categories[0].Tags[0].Name)
	assert.Equal(t, "news", categories[0].Tags[1].Name)

	assert.Equal(t, "empty", categories[1].Name)
	assert.Empty(t, categories[1].Tags)

	require.Len(t, categories[2].Tags, 1)
	assert.Equal(t, "sports", categories[2].Tags[0].Name)
}

func TestRepo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	alice := testutil.CreateAuthor(t, db, "alice", 1)
	c := testutil.CreateContent(t, db, alice, "c", testutil.Counters{Likes: 3})

	d := dao.NewContentDAO(db)

	got, err := d.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.LikeCount)

	_, err = d.FindByID(ctx, c.ID+100)
	assert.Error(t, err)

	all, err := d.FindAll(ctx, dao.ByAuthorID(alice.ID))
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
