package types

import "time"

// ProfileCounts 全部来自关系表的实时计数
type ProfileCounts struct {
	Articles         int64 `json:"articles"`
	Followers        int64 `json:"followers"`
	Following        int64 `json:"following"`
	Bookmarks        int64 `json:"bookmarks"`
	LikesGiven       int64 `json:"likes_given"`
	CommentsReceived int64 `json:"comments_received"`
	LikesReceived    int64 `json:"likes_received"`
}

type Profile struct {
	ID        uint64        `json:"id,string"`
	Username  string        `json:"username"`
	Bio       string        `json:"bio"`
	AvatarURL string        `json:"avatar_url"`
	Role      string        `json:"role"`
	CreatedAt time.Time     `json:"created_at"`
	Counts    ProfileCounts `json:"counts"`
}

// UpdateProfileReq Bio 缺省时不修改；AvatarURL 为空表示清除头像
type UpdateProfileReq struct {
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
	AvatarURL string  `json:"avatar_url" binding:"omitempty,url"`
}

// ProfileRes 资料页，IsFollowing 为当前浏览者视角
type ProfileRes struct {
	*Profile
	IsFollowing bool `json:"is_following"`
}

// PopularAuthor 首页作者预览，粉丝数可能滞后
type PopularAuthor struct {
	ID            uint64 `json:"id,string"`
	Username      string `json:"username"`
	AvatarURL     string `json:"avatar_url"`
	Bio           string `json:"bio"`
	ArticleCount  int64  `json:"article_count"`
	FollowerCount int64  `json:"follower_count"`
}

type PopularAuthorsReq struct {
	Limit int `form:"limit"`
}
