package dao

import (
	"context"
	"time"

	"Quill/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询，不存在返回 nil, nil
func (u *UserDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

func (u *UserDAO) Exists(ctx context.Context, id uint64) (bool, error) {
	return u.Repo.IsExist(ctx, "id = ?", id)
}

// UpdateProfile bio 为 nil 时保留原值，头像总是覆盖
func (u *UserDAO) UpdateProfile(ctx context.Context, id uint64, bio *string, avatarURL string) error {
	fields := map[string]any{
		"avatar_url": avatarURL,
		"updated_at": time.Now(),
	}
	if bio != nil {
		fields["bio"] = *bio
	}
	return u.Db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

// FindMapByIds 批量查询，按 id 索引
func (u *UserDAO) FindMapByIds(ctx context.Context, ids []uint64) (map[uint64]*models.User, error) {
	users, err := u.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	m := make(map[uint64]*models.User, len(users))
	for _, user := range users {
		m[user.ID] = user
	}
	return m, nil
}

// PopularAuthor 作者预览行，粉丝数取自冗余统计表
type PopularAuthor struct {
	ID            uint64
	Username      string
	AvatarURL     string
	Bio           string
	ArticleCount  int64
	FollowerCount int64
}

// ListPopularAuthors 有已发布文章的作者，按发布数倒序
func (u *UserDAO) ListPopularAuthors(ctx context.Context, limit int) ([]*PopularAuthor, error) {
	rows := make([]*PopularAuthor, 0, limit)
	err := u.Db.WithContext(ctx).
		Table("users AS u").
		Select("u.id, u.username, u.avatar_url, u.bio, COUNT(a.id) AS article_count, COALESCE(MAX(s.follower_count), 0) AS follower_count").
		Joins("JOIN articles AS a ON a.author_id = u.id AND a.published = ?", true).
		Joins("LEFT JOIN user_stats AS s ON s.user_id = u.id").
		Group("u.id, u.username, u.avatar_url, u.bio").
		Order("article_count DESC, u.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
