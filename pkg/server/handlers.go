package server

import (
	"Quill/handler"
)

type Handlers struct {
	Follow   *handler.Follow
	User     *handler.User
	Like     *handler.Like
	Bookmark *handler.Bookmark
}
