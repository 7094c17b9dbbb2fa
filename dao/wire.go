package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewArticleDAO,
	NewCommentDAO,
	NewFollowDAO,
	NewLikeDAO,
	NewBookmarkDAO,
	NewUserStatsDAO,
	NewArticleStatsDAO,
)
