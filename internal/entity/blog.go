package entity

import "time"

const DefaultAuthor = "By bolger team"

type Blog struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Content         string    `db:"content"`
	Author          string    `db:"author"`
	AuthorImage     string    `db:"author_image"`
	BlogImage       string    `db:"blog_image"`
	Likes           int64     `db:"likes"`
	Views           int64     `db:"views"`
	Tags            []string  `db:"tags"`
	MetaTitle       string    `db:"meta_title"`
	MetaDescription string    `db:"meta_description"`
	Comments        []Comment `db:"-"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type Comment struct {
	ID        string    `db:"id"`
	BlogID    string    `db:"blog_id"`
	Username  string    `db:"username"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

type TagCount struct {
	Tag   string `db:"tag"`
	Count int64  `db:"count"`
}

// ImageSlot names one of the two image attachment points of a post.
type ImageSlot string

const (
	SlotAuthorImage ImageSlot = "authorImage"
	SlotBlogImage   ImageSlot = "blogImage"
)

func (s ImageSlot) Valid() bool {
	return s == SlotAuthorImage || s == SlotBlogImage
}
