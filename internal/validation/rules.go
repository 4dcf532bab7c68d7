package validation

var (
	BlogRules = NewRuleSet("blog",
		Field("name").Trim().
			NotEmpty("Name is required").
			MaxLength(15, "Name should be max 15 characters"),
		Field("description").Trim().
			NotEmpty("Description is required").
			MaxLength(500, "Description should be max 500 characters"),
		Field("websiteUrl").Trim().
			NotEmpty("Website URL is required").
			MaxLength(100, "Website URL is too long").
			URL("Website URL should be a valid URL"),
	)

	// BlogPostRules validates a post created under /blogs/{id}/posts, where
	// the blog comes from the path.
	BlogPostRules = NewRuleSet("post",
		postTitle,
		postShortDescription,
		postContent,
	)

	PostRules = NewRuleSet("post",
		postTitle,
		postShortDescription,
		postContent,
		Field("blogId").
			NotEmpty("Blog ID is required").
			ResourceID("Blog ID must be a valid identifier"),
	)

	UserRules = NewRuleSet("user",
		Field("login").Trim().
			NotEmpty("Login is required").
			Length(3, 10, "Login length must be 3-10"),
		Field("password").Trim().
			NotEmpty("Password is required").
			Length(6, 20, "Password length must be 6-20"),
		Field("email").Trim().
			NotEmpty("Email is required").
			Email("Invalid email format"),
	)

	LoginRules = NewRuleSet("login",
		Field("loginOrEmail").NotEmpty("loginOrEmail is required"),
		Field("password").NotEmpty("password is required"),
	)
)

var postTitle = Field("title").Trim().
	NotEmpty("Title is required").
	MaxLength(30, "Title should be max 30 characters")

var postShortDescription = Field("shortDescription").Trim().
	NotEmpty("Short description is required").
	MaxLength(100, "Short description should be max 100 characters")

var postContent = Field("content").Trim().
	NotEmpty("Content is required").
	MaxLength(1000, "Content should be max 1000 characters")
