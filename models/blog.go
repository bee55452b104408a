package models

import "time"

// BlogPost is an article on the studio blog. Content may be written by hand
// or generated from a topic prompt.
type BlogPost struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	AuthorID    string    `bson:"author_id" json:"authorId"`
	CoverURL    string    `bson:"cover_url,omitempty" json:"coverUrl,omitempty"`
	Tags        []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	Generated   bool      `bson:"generated" json:"generated"`
	PublishedAt time.Time `bson:"published_at" json:"publishedAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Article is the structured payload returned by the content generator.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
