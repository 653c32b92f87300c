package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"canny-backend/internal/core/database"
	"canny-backend/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// 每个测试独立的内存库；单连接保证库在测试期间存活
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          "file:" + t.Name() + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, AutoMigrate(context.Background(), db))
	return db
}

func seedUser(t *testing.T, r *UserRepo, id string) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           id,
		Email:        id + "@x.com",
		PasswordHash: "hash",
		FullName:     "Name " + id,
		CurrentRole:  "dev",
	}
	require.NoError(t, r.Create(context.Background(), u))
	return u
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func seedItem(t *testing.T, r *LearningItemRepo, id, owner string, public bool, startedAt time.Time) *domain.LearningItem {
	t.Helper()
	it := &domain.LearningItem{
		ID:        id,
		UserID:    owner,
		Title:     "Title " + id,
		Type:      "book",
		Status:    "reading",
		IsPublic:  public,
		StartedAt: startedAt,
	}
	require.NoError(t, r.Create(context.Background(), it))
	return it
}

func ids[T any](xs []T, id func(T) string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, id(x))
	}
	return out
}

func TestUserRepo_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(setupTestDB(t))
	seedUser(t, users, "a")

	byID, err := users.FindByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byID.Email)

	byEmail, err := users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "a", byEmail.ID)

	_, err = users.FindByID(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = users.FindByEmail(ctx, "missing@x.com")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	users := NewUserRepo(setupTestDB(t))
	seedUser(t, users, "a")

	err := users.Create(context.Background(), &domain.User{ID: "b", Email: "a@x.com", PasswordHash: "h"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateIdentity), "got %v", err)
}

func TestUserRepo_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	users := NewUserRepo(setupTestDB(t))
	seedUser(t, users, "a")
	seedUser(t, users, "b")

	u, err := users.UpdateProfile(ctx, "a", domain.ProfilePatch{FullName: "Ada", CurrentRole: "lead", Bio: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FullName)
	assert.Equal(t, "lead", u.CurrentRole)
	assert.Equal(t, "hi", u.Bio)

	other, err := users.FindByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "Name b", other.FullName)

	_, err = users.UpdateProfile(ctx, "ghost", domain.ProfilePatch{FullName: "x"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUserRepo_List(t *testing.T) {
	users := NewUserRepo(setupTestDB(t))
	for i := 0; i < 3; i++ {
		seedUser(t, users, fmt.Sprintf("u%d", i))
	}
	got, total, err := users.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, got, 2)
}

func TestLearningItemRepo_ListByOwner(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedUser(t, NewUserRepo(db), "a")
	seedUser(t, NewUserRepo(db), "b")
	items := NewLearningItemRepo(db)
	seedItem(t, items, "old", "a", true, t0)
	seedItem(t, items, "new", "a", true, t0.Add(2*time.Hour))
	seedItem(t, items, "private", "a", false, t0.Add(time.Hour))
	seedItem(t, items, "other", "b", true, t0)

	pub, err := items.ListByOwner(ctx, "a", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old"}, ids(pub, func(i domain.LearningItem) string { return i.ID }))

	all, err := items.ListByOwner(ctx, "a", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "private", "old"}, ids(all, func(i domain.LearningItem) string { return i.ID }))

	none, err := items.ListByOwner(ctx, "nobody", true)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestLearningItemRepo_UpdateOwned(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedUser(t, NewUserRepo(db), "a")
	items := NewLearningItemRepo(db)
	seedItem(t, items, "i1", "a", false, t0)

	pub := true
	got, err := items.UpdateOwned(ctx, "i1", "a", domain.ItemFields{Title: "New", Type: "course", Status: "done", IsPublic: &pub})
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "course", got.Type)
	assert.Equal(t, "done", got.Status)
	assert.Equal(t, "", got.Author)
	assert.True(t, got.IsPublic)
	assert.Equal(t, "a", got.UserID)

	// IsPublic 省略时保持原值
	got, err = items.UpdateOwned(ctx, "i1", "a", domain.ItemFields{Title: "Again"})
	require.NoError(t, err)
	assert.True(t, got.IsPublic)

	_, errForeign := items.UpdateOwned(ctx, "i1", "b", domain.ItemFields{Title: "hijack"})
	_, errMissing := items.UpdateOwned(ctx, "nope", "a", domain.ItemFields{Title: "x"})
	assert.True(t, errors.Is(errForeign, domain.ErrNotFound))
	assert.True(t, errors.Is(errMissing, domain.ErrNotFound))
	assert.Equal(t, errMissing.Error(), errForeign.Error())

	unchanged, err := items.FindOwned(ctx, "i1", "a")
	require.NoError(t, err)
	assert.Equal(t, "Again", unchanged.Title)
}

func TestLearningItemRepo_DeleteOwned(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedUser(t, NewUserRepo(db), "a")
	items := NewLearningItemRepo(db)
	seedItem(t, items, "i1", "a", true, t0)

	require.NoError(t, items.DeleteOwned(ctx, "i1", "b"))
	_, err := items.FindOwned(ctx, "i1", "a")
	require.NoError(t, err, "non-owner delete must not remove the row")

	require.NoError(t, items.DeleteOwned(ctx, "i1", "a"))
	require.NoError(t, items.DeleteOwned(ctx, "i1", "a"))
	_, err = items.FindOwned(ctx, "i1", "a")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestFollowRepo(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepo(db)
	follows := NewFollowRepo(db)
	for _, id := range []string{"a", "b", "c"} {
		seedUser(t, users, id)
	}

	require.NoError(t, follows.Create(ctx, &domain.Follow{FollowerID: "a", FollowingID: "b", CreatedAt: t0}))
	require.NoError(t, follows.Create(ctx, &domain.Follow{FollowerID: "a", FollowingID: "c", CreatedAt: t0.Add(time.Minute)}))
	require.NoError(t, follows.Create(ctx, &domain.Follow{FollowerID: "c", FollowingID: "b", CreatedAt: t0}))

	err := follows.Create(ctx, &domain.Follow{FollowerID: "a", FollowingID: "b"})
	assert.True(t, errors.Is(err, domain.ErrConstraintViolation), "got %v", err)

	following, err := follows.Following(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, ids(following, func(u domain.User) string { return u.ID }))

	followers, err := follows.Followers(ctx, "b")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, ids(followers, func(u domain.User) string { return u.ID }))

	require.NoError(t, follows.Delete(ctx, "a", "b"))
	require.NoError(t, follows.Delete(ctx, "a", "b"))
	following, err = follows.Following(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, ids(following, func(u domain.User) string { return u.ID }))
}

func TestFollowRepo_UnknownUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	seedUser(t, NewUserRepo(db), "a")
	follows := NewFollowRepo(db)

	err := follows.Create(ctx, &domain.Follow{FollowerID: "a", FollowingID: "ghost-user"})
	assert.True(t, errors.Is(err, domain.ErrConstraintViolation), "got %v", err)

	var n int64
	require.NoError(t, db.Model(&domain.Follow{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestFollowRepo_CascadeOnUserDelete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepo(db)
	seedUser(t, users, "a")
	seedUser(t, users, "b")
	seedItem(t, NewLearningItemRepo(db), "b1", "b", true, t0)
	require.NoError(t, NewFollowRepo(db).Create(ctx, &domain.Follow{FollowerID: "a", FollowingID: "b"}))

	require.NoError(t, db.Delete(&domain.User{}, "id = ?", "b").Error)

	var follows, items int64
	require.NoError(t, db.Model(&domain.Follow{}).Count(&follows).Error)
	require.NoError(t, db.Model(&domain.LearningItem{}).Count(&items).Error)
	assert.Zero(t, follows)
	assert.Zero(t, items)
}

func TestLearningItemRepo_UnknownOwner(t *testing.T) {
	err := NewLearningItemRepo(setupTestDB(t)).Create(context.Background(), &domain.LearningItem{
		ID: "i1", UserID: "ghost-user", Title: "x", StartedAt: t0,
	})
	require.Error(t, err)
}

func TestFeedRepo(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepo(db)
	items := NewLearningItemRepo(db)
	follows := NewFollowRepo(db)
	feed := NewFeedRepo(db)
	for _, id := range []string{"me", "b", "c"} {
		seedUser(t, users, id)
	}

	got, err := feed.PublicFromFollowed(ctx, "me", 50)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	seedItem(t, items, "b1", "b", true, t0)
	seedItem(t, items, "b2", "b", true, t0.Add(2*time.Hour))
	seedItem(t, items, "b-private", "b", false, t0.Add(3*time.Hour))
	seedItem(t, items, "c1", "c", true, t0.Add(time.Hour))
	seedItem(t, items, "mine", "me", true, t0.Add(4*time.Hour))

	require.NoError(t, follows.Create(ctx, &domain.Follow{FollowerID: "me", FollowingID: "b"}))
	got, err = feed.PublicFromFollowed(ctx, "me", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "b1"}, ids(got, func(f domain.FeedItem) string { return f.ID }))
	assert.Equal(t, "Name b", got[0].FullName)
	assert.Equal(t, "dev", got[0].CurrentRole)
	assert.Equal(t, "b", got[0].UserID)
	assert.True(t, got[0].IsPublic)

	require.NoError(t, follows.Create(ctx, &domain.Follow{FollowerID: "me", FollowingID: "c"}))
	got, err = feed.PublicFromFollowed(ctx, "me", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b2", "c1"}, ids(got, func(f domain.FeedItem) string { return f.ID }))
}

func TestRecommendationRepo(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := NewUserRepo(db)
	items := NewLearningItemRepo(db)
	recs := NewRecommendationRepo(db)
	for _, id := range []string{"me", "b", "c"} {
		seedUser(t, users, id)
	}
	seedItem(t, items, "m1", "me", true, t0)
	seedItem(t, items, "m-private", "me", false, t0)
	seedItem(t, items, "b1", "b", true, t0)
	seedItem(t, items, "b-private", "b", false, t0)
	seedItem(t, items, "c1", "c", true, t0.Add(time.Hour))

	mine, err := recs.PublicByUser(ctx, "me")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1"}, ids(mine, func(f domain.FeedItem) string { return f.ID }))
	assert.Equal(t, "Name me", mine[0].FullName)

	others, err := recs.PublicExcept(ctx, "me", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "b1"}, ids(others, func(f domain.FeedItem) string { return f.ID }))

	capped, err := recs.PublicExcept(ctx, "me", 1)
	require.NoError(t, err)
	assert.Len(t, capped, 1)

	none, err := recs.PublicByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
