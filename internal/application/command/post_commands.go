package command

type CreatePostCommand struct {
	Message string   `json:"message"`
	Links   []string `json:"links"`
}

type UpdatePostCommand struct {
	PostID  string   `json:"postID"`
	Message string   `json:"message"`
	Links   []string `json:"links"`
}
