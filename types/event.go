package types

import "time"

const (
	EventFollow     = "follow"
	EventUnfollow   = "unfollow"
	EventLike       = "like"
	EventUnlike     = "unlike"
	EventBookmark   = "bookmark"
	EventUnbookmark = "unbookmark"
)

// InteractionEvent 切换提交后投递到消息队列
type InteractionEvent struct {
	Type       string    `json:"type"`
	ActorID    uint64    `json:"actor_id,string"`
	TargetID   uint64    `json:"target_id,string"`
	OccurredAt time.Time `json:"occurred_at"`
}
