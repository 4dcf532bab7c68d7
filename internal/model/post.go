package model

import "time"

// Post represents a post in storage. BlogName is copied from the owning blog
// on every write.
type Post struct {
	ID               string
	Title            string
	ShortDescription string
	Content          string
	BlogID           string
	BlogName         string
	CreatedAt        time.Time
}

// PostRequest is the payload for creating or updating a post. BlogID is
// ignored when the blog comes from the URL.
type PostRequest struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	BlogID           string `json:"blogId"`
}

// PostResponse is the public projection of a post.
type PostResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	BlogID           string    `json:"blogId"`
	BlogName         string    `json:"blogName"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PostQuery pages the post list, optionally scoped to one blog.
type PostQuery struct {
	PageQuery
	BlogID string
}

// PostSortFields lists the fields a post list may be sorted by.
var PostSortFields = []string{"createdAt", "title", "shortDescription", "content", "blogId", "blogName"}
