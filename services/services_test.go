package services

import (
	"testing"
	"time"

	"blogly/models"
	"blogly/repositories"
	"blogly/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users UserService
	posts PostService
	tags  TagService
}

func newFixture(t *testing.T) fixture {
	db := testutil.NewDB(t)
	userRepo := repositories.NewUserRepository(db)
	postRepo := repositories.NewPostRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	return fixture{
		users: NewUserService(userRepo),
		posts: NewPostService(postRepo, userRepo, tagRepo),
		tags:  NewTagService(tagRepo, postRepo),
	}
}

func TestCreateUserDefaultsImageURL(t *testing.T) {
	f := newFixture(t)

	user, err := f.users.CreateUser(models.UserForm{FirstName: " Harry ", LastName: "Potter"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "Harry Potter", user.FullName())
	assert.Equal(t, models.DefaultImageURL, user.ImageURL)

	edited, err := f.users.UpdateUser(user.ID, models.UserForm{FirstName: "Harry", LastName: "Potter", ImageURL: "https://example.com/h.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/h.png", edited.ImageURL)

	edited, err = f.users.UpdateUser(user.ID, models.UserForm{FirstName: "Harry", LastName: "Potter"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultImageURL, edited.ImageURL)
}

func TestUpdateMissingUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.users.UpdateUser(7, models.UserForm{FirstName: "a", LastName: "b"})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = f.users.DeleteUser(7)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreatePostRequiresExistingUser(t *testing.T) {
	f := newFixture(t)

	_, err := f.posts.CreatePost(99, models.PostForm{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreatePostDropsUnknownTags(t *testing.T) {
	f := newFixture(t)
	user, err := f.users.CreateUser(models.UserForm{FirstName: "Harry", LastName: "Potter"})
	require.NoError(t, err)
	magic, err := f.tags.CreateTag(models.TagForm{Name: "magic"})
	require.NoError(t, err)

	post, err := f.posts.CreatePost(user.ID, models.PostForm{Title: "Hedwig", Content: "An owl.", Tags: []uint{magic.ID, 404}})
	require.NoError(t, err)
	assert.Equal(t, "Harry Potter", post.User.FullName())
	assert.WithinDuration(t, time.Now(), post.CreatedAt, time.Minute)

	got, err := f.posts.GetPost(post.ID)
	require.NoError(t, err)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "magic", got.Tags[0].Name)
}

func TestUpdatePostClearsTags(t *testing.T) {
	f := newFixture(t)
	user, err := f.users.CreateUser(models.UserForm{FirstName: "Harry", LastName: "Potter"})
	require.NoError(t, err)
	magic, err := f.tags.CreateTag(models.TagForm{Name: "magic"})
	require.NoError(t, err)
	post, err := f.posts.CreatePost(user.ID, models.PostForm{Title: "Hedwig", Content: "An owl.", Tags: []uint{magic.ID}})
	require.NoError(t, err)

	_, err = f.posts.UpdatePost(post.ID, models.PostForm{Title: "Hedwig", Content: "Still an owl."})
	require.NoError(t, err)

	got, err := f.posts.GetPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
	assert.Equal(t, "Still an owl.", got.Content)

	tag, err := f.tags.GetTag(magic.ID)
	require.NoError(t, err)
	assert.Empty(t, tag.Posts)
}

func TestDeleteReturnsRemovedEntity(t *testing.T) {
	f := newFixture(t)
	user, err := f.users.CreateUser(models.UserForm{FirstName: "Harry", LastName: "Potter"})
	require.NoError(t, err)
	post, err := f.posts.CreatePost(user.ID, models.PostForm{Title: "Hedwig", Content: "An owl."})
	require.NoError(t, err)
	tag, err := f.tags.CreateTag(models.TagForm{Name: "magic", Posts: []uint{post.ID}})
	require.NoError(t, err)

	deletedTag, err := f.tags.DeleteTag(tag.ID)
	require.NoError(t, err)
	assert.Equal(t, "magic", deletedTag.Name)

	deletedPost, err := f.posts.DeletePost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hedwig", deletedPost.Title)
	assert.Equal(t, user.ID, deletedPost.UserID)

	deletedUser, err := f.users.DeleteUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Harry Potter", deletedUser.FullName())

	users, err := f.users.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestDuplicateTagIsAStorageError(t *testing.T) {
	f := newFixture(t)

	_, err := f.tags.CreateTag(models.TagForm{Name: "magic"})
	require.NoError(t, err)

	_, err = f.tags.CreateTag(models.TagForm{Name: " magic "})
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)

	tags, err := f.tags.ListTags()
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestListRecentPostsRespectsLimit(t *testing.T) {
	f := newFixture(t)
	user, err := f.users.CreateUser(models.UserForm{FirstName: "Harry", LastName: "Potter"})
	require.NoError(t, err)

	svc := f.posts.(*postService)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return at }
		_, err := f.posts.CreatePost(user.ID, models.PostForm{Title: string(rune('A' + i)), Content: "x"})
		require.NoError(t, err)
	}

	recent, err := f.posts.ListRecentPosts(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "C", recent[0].Title)
	assert.Equal(t, "B", recent[1].Title)

	all, err := f.posts.ListPosts()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
