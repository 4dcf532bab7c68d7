package model

import "time"

// Blog represents a blog in storage.
type Blog struct {
	ID           string
	Name         string
	Description  string
	WebsiteURL   string
	IsMembership bool
	CreatedAt    time.Time
}

// BlogRequest is the payload for creating or updating a blog.
type BlogRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WebsiteURL  string `json:"websiteUrl"`
}

// BlogResponse is the public projection of a blog.
type BlogResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	WebsiteURL   string    `json:"websiteUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	IsMembership bool      `json:"isMembership"`
}

// BlogQuery filters and pages the blog list.
type BlogQuery struct {
	PageQuery
	SearchNameTerm string
}

// BlogSortFields lists the fields a blog list may be sorted by.
var BlogSortFields = []string{"createdAt", "name", "description", "websiteUrl", "isMembership"}
