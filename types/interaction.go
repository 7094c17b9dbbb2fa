package types

import "time"

type ArticleReq struct {
	ArticleID uint64 `json:"article_id,string" form:"article_id" binding:"required"`
}

type ToggleLikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type ToggleBookmarkResult struct {
	Bookmarked bool `json:"bookmarked"`
}

type LikeStatusRes struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

type BookmarkStatusRes struct {
	Bookmarked bool  `json:"bookmarked"`
	Count      int64 `json:"count"`
}

type ArticleSummary struct {
	ID        uint64    `json:"id,string"`
	AuthorID  uint64    `json:"author_id,string"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type BookmarkListReq struct {
	Limit int `form:"limit"`
}

type BookmarkListRes struct {
	List []*ArticleSummary `json:"list"`
}
