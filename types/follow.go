package types

// ToggleFollowReq 关注/取消关注
type ToggleFollowReq struct {
	UserID uint64 `json:"user_id,string" binding:"required"`
}

// FollowQueryReq action=check（默认）返回是否已关注，action=count 返回两个计数
type FollowQueryReq struct {
	UserID uint64 `form:"user_id" binding:"required"`
	Action string `form:"action" binding:"omitempty,oneof=check count"`
}

// ToggleFollowResult 两个计数都描述被关注的目标用户
type ToggleFollowResult struct {
	Following      bool  `json:"following"`
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

type FollowCheckRes struct {
	Following bool `json:"following"`
}

type FollowCountRes struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}

// PeerSummary 关注列表中的对端用户，IsFollowing 是当前浏览者视角
type PeerSummary struct {
	ID          uint64 `json:"id,string"`
	Username    string `json:"username"`
	AvatarURL   string `json:"avatar_url"`
	Bio         string `json:"bio"`
	IsFollowing bool   `json:"is_following"`
}

type PeerListReq struct {
	Limit int `form:"limit"`
}

type PeerListRes struct {
	List []*PeerSummary `json:"list"`
}
