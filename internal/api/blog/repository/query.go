package blogRepository

const blogColumns = `
			id,
			title,
			content,
			author,
			author_image,
			blog_image,
			likes,
			views,
			tags,
			meta_title,
			meta_description,
			created_at,
			updated_at
`

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			content,
			author,
			author_image,
			blog_image,
			likes,
			views,
			tags,
			meta_title,
			meta_description,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:content,
			:author,
			:author_image,
			:blog_image,
			0,
			0,
			:tags,
			:meta_title,
			:meta_description,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT` + blogColumns + `
		FROM blogs
		WHERE id = :id
	`

	queryListBlogs = `
		SELECT` + blogColumns + `
		FROM blogs
	`

	whereHasTag = `
		WHERE :tag = ANY(tags)
	`

	querySearchBlogs = `
		SELECT` + blogColumns + `
		FROM blogs
		WHERE title ILIKE :pattern
			OR content ILIKE :pattern
			OR EXISTS (
				SELECT 1 FROM unnest(tags) AS t(tag) WHERE t.tag ILIKE :pattern
			)
		ORDER BY created_at DESC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			content = :content,
			author = :author,
			author_image = :author_image,
			blog_image = :blog_image,
			tags = :tags,
			meta_title = :meta_title,
			meta_description = :meta_description,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryIncrementLikes = `
		UPDATE blogs
		SET likes = likes + 1
		WHERE id = :id
		RETURNING likes
	`

	queryIncrementViews = `
		UPDATE blogs
		SET views = views + 1
		WHERE id = :id
		RETURNING views
	`

	querySetAuthorImage = `
		UPDATE blogs
		SET author_image = :url, updated_at = :updated_at
		WHERE id = :id
	`

	querySetBlogImage = `
		UPDATE blogs
		SET blog_image = :url, updated_at = :updated_at
		WHERE id = :id
	`

	queryCreateComment = `
		INSERT INTO blog_comments (
			id,
			blog_id,
			username,
			text,
			created_at
		) VALUES (
			:id,
			:blog_id,
			:username,
			:text,
			:created_at
		)
	`

	queryGetCommentsByBlogIDs = `
		SELECT
			id,
			blog_id,
			username,
			text,
			created_at
		FROM blog_comments
		WHERE blog_id = ANY(:blog_ids)
		ORDER BY created_at ASC, id ASC
	`

	queryGetAllTags = `
		SELECT DISTINCT t.tag
		FROM blogs, unnest(blogs.tags) AS t(tag)
		ORDER BY t.tag ASC
	`

	queryGetPopularTags = `
		SELECT
			t.tag AS tag,
			COUNT(*) AS count
		FROM blogs, unnest(blogs.tags) AS t(tag)
		GROUP BY t.tag
		ORDER BY count DESC, t.tag ASC
		LIMIT :limit
	`
)

var orderBySortKey = map[string]string{
	"createdAt": " ORDER BY created_at DESC, id DESC",
	"likes":     " ORDER BY likes DESC, created_at DESC",
	"title":     " ORDER BY title ASC, created_at DESC",
}
