package blogRepository

import (
	blogs "BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"BlogGolang/pkg/log"
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var blogRowColumns = []string{
	"id", "title", "content", "author", "author_image", "blog_image",
	"likes", "views", "tags", "meta_title", "meta_description", "created_at", "updated_at",
}

func setupBlogMock(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(sqlx.NewDb(db, "postgres"), log.NewDiscardLogger())
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	return client, mock
}

func TestListBlogs_FilterByTag(t *testing.T) {
	client, mock := setupBlogMock(t)
	now := time.Now()

	rows := sqlmock.NewRows(blogRowColumns).
		AddRow("b2", "Second", "body", "By bolger team", "", "", 3, 10, "{go,web}", "", "", now, now).
		AddRow("b1", "First", "body", "By bolger team", "", "", 1, 2, "{go}", "", "", now.Add(-time.Hour), now)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE $1 = ANY(tags)") + `\s+` + regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("go").
		WillReturnRows(rows)

	list, err := client.Blogs.ListBlogs(context.Background(), "go", blogs.SortByCreatedAt)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b2", list[0].ID)
	assert.Equal(t, []string{"go", "web"}, list[0].Tags)
	assert.Equal(t, int64(10), list[0].Views)
	assert.NotNil(t, list[1].Comments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBlogs_SortByLikes(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY likes DESC")).
		WillReturnRows(sqlmock.NewRows(blogRowColumns))

	list, err := client.Blogs.ListBlogs(context.Background(), "", blogs.SortByLikes)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBlogs_UnknownSortFallsBack(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(blogRowColumns))

	_, err := client.Blogs.ListBlogs(context.Background(), "", blogs.SortKey("views"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchBlogs_EscapesPattern(t *testing.T) {
	client, mock := setupBlogMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("title ILIKE $1")).
		WithArgs(`%50\%\_off\\\_%`, `%50\%\_off\\\_%`, `%50\%\_off\\\_%`).
		WillReturnRows(sqlmock.NewRows(blogRowColumns))

	_, err := client.Blogs.SearchBlogs(context.Background(), `50%_off\_`)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlogByID_NotFound(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM blogs")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := client.Blogs.GetBlogByID(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementViews(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SET views = views + 1")).
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"views"}).AddRow(8))

	views, err := client.Blogs.IncrementViews(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(8), views)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementLikes_NotFound(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SET likes = likes + 1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"likes"}))

	_, err := client.Blogs.IncrementLikes(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBlog_NotFound(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blogs")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := client.Blogs.DeleteBlog(context.Background(), "missing")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetImage_Slots(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET author_image = $1")).
		WithArgs("https://cdn/x.png", sqlmock.AnyArg(), "b1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, client.Blogs.SetImage(context.Background(), "b1", entity.SlotAuthorImage, "https://cdn/x.png"))

	err := client.Blogs.SetImage(context.Background(), "b1", entity.ImageSlot("avatar"), "https://cdn/x.png")
	assert.ErrorIs(t, err, blogs.ErrInvalidImageType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBlog_DatabaseError(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO blogs")).
		WillReturnError(errors.New("connection reset"))

	err := client.Blogs.CreateBlog(context.Background(), entity.Blog{ID: "b1", Title: "t", Content: "c"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentsByBlogIDs_GroupsByPost(t *testing.T) {
	client, mock := setupBlogMock(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"id", "blog_id", "username", "text", "created_at"}).
		AddRow("c1", "b1", "ana", "first", now).
		AddRow("c2", "b2", "bo", "hello", now).
		AddRow("c3", "b1", "cy", "second", now.Add(time.Second))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE blog_id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	grouped, err := client.Comments.GetCommentsByBlogIDs(context.Background(), []string{"b1", "b2"})
	require.NoError(t, err)
	require.Len(t, grouped["b1"], 2)
	assert.Equal(t, "first", grouped["b1"][0].Text)
	assert.Equal(t, "second", grouped["b1"][1].Text)
	assert.Len(t, grouped["b2"], 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommentsByBlogIDs_EmptySkipsQuery(t *testing.T) {
	client, mock := setupBlogMock(t)

	grouped, err := client.Comments.GetCommentsByBlogIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, grouped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPopularTags(t *testing.T) {
	client, mock := setupBlogMock(t)

	rows := sqlmock.NewRows([]string{"tag", "count"}).
		AddRow("go", 5).
		AddRow("api", 2).
		AddRow("web", 2)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY count DESC, t.tag ASC")).
		WithArgs(10).
		WillReturnRows(rows)

	counts, err := client.Tags.GetPopularTags(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []entity.TagCount{{Tag: "go", Count: 5}, {Tag: "api", Count: 2}, {Tag: "web", Count: 2}}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllTags(t *testing.T) {
	client, mock := setupBlogMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT t.tag")).
		WillReturnRows(sqlmock.NewRows([]string{"tag"}).AddRow("api").AddRow("go"))

	tags, err := client.Tags.GetAllTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "go"}, tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}
