package dao

import (
	"context"
	"time"

	"Quill/pkg/log"
	"Quill/pkg/snowflake"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// EdgeDAO 二元关系表的通用操作：(left, right) 唯一，存在即关系成立
// 关注表 left=follower_id right=following_id，点赞/收藏表 left=user_id right=article_id
type EdgeDAO[T any] struct {
	Repo[T]
	left  string
	right string
	build func(id, left, right uint64, at time.Time) *T
}

func newEdgeDAO[T any](db *gorm.DB, left, right string, build func(id, left, right uint64, at time.Time) *T) EdgeDAO[T] {
	return EdgeDAO[T]{
		Repo:  NewRepo[T](db),
		left:  left,
		right: right,
		build: build,
	}
}

// ToggleResult 一次切换的结果
type ToggleResult struct {
	// Present 切换后关系是否存在
	Present bool
	// Absorbed 插入时撞上唯一键，说明并发的另一个请求先写入了
	Absorbed bool
}

// WithTx 绑定到事务
func (d EdgeDAO[T]) WithTx(tx *gorm.DB) EdgeDAO[T] {
	d.Repo = d.Repo.withDB(tx)
	return d
}

func (d EdgeDAO[T]) pair() string {
	return d.left + " = ? AND " + d.right + " = ?"
}

func (d EdgeDAO[T]) Exists(ctx context.Context, left, right uint64) (bool, error) {
	return d.IsExist(ctx, d.pair(), left, right)
}

// Toggle 在 tx 内先查后改：存在则删除，不存在则插入
// 插入放在 savepoint 里，唯一键冲突只回滚到 savepoint，外层事务继续可用
func (d EdgeDAO[T]) Toggle(ctx context.Context, tx *gorm.DB, left, right uint64) (ToggleResult, error) {
	db := tx.WithContext(ctx)

	var rows []T
	if err := db.Where(d.pair(), left, right).Limit(1).Find(&rows).Error; err != nil {
		return ToggleResult{}, err
	}

	if len(rows) > 0 {
		// 另一个请求可能已经删掉，RowsAffected 为 0 也视为已取消
		if err := db.Where(d.pair(), left, right).Delete(d.model()).Error; err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Present: false}, nil
	}

	row := d.build(snowflake.GenID(), left, right, time.Now())
	err := db.Transaction(func(sp *gorm.DB) error {
		return sp.Create(row).Error
	})
	if err == nil {
		return ToggleResult{Present: true}, nil
	}
	if IsDuplicateKey(err) {
		log.L.Info("edge already inserted by concurrent writer",
			zap.String("table", d.tableName()),
			zap.Uint64("left", left),
			zap.Uint64("right", right),
		)
		return ToggleResult{Present: true, Absorbed: true}, nil
	}
	return ToggleResult{}, err
}

func (d EdgeDAO[T]) tableName() string {
	if t, ok := any(d.model()).(schema.Tabler); ok {
		return t.TableName()
	}
	return ""
}

// CountByLeft 例如某人关注了多少人、点赞了多少篇
func (d EdgeDAO[T]) CountByLeft(ctx context.Context, left uint64) (int64, error) {
	return d.Count(ctx, d.left+" = ?", left)
}

// CountByRight 例如某人的粉丝数、某篇文章的点赞数
func (d EdgeDAO[T]) CountByRight(ctx context.Context, right uint64) (int64, error) {
	return d.Count(ctx, d.right+" = ?", right)
}

// CountGroupByRight 按 right 分组计数，未出现的 id 不在结果中
func (d EdgeDAO[T]) CountGroupByRight(ctx context.Context, rights []uint64) (map[uint64]int64, error) {
	return countGroupBy[T](ctx, d.Db, d.right, rights)
}

// ListByLeft 按 left 列出关系，最新的在前
func (d EdgeDAO[T]) ListByLeft(ctx context.Context, left uint64, limit int) ([]*T, error) {
	return d.listBy(ctx, d.left, left, limit)
}

// ListByRight 按 right 列出关系，最新的在前
func (d EdgeDAO[T]) ListByRight(ctx context.Context, right uint64, limit int) ([]*T, error) {
	return d.listBy(ctx, d.right, right, limit)
}

func (d EdgeDAO[T]) listBy(ctx context.Context, column string, id uint64, limit int) ([]*T, error) {
	items := make([]*T, 0)
	err := d.Db.WithContext(ctx).
		Where(column+" = ?", id).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// RightsOf left 与 rights 中哪些存在关系，一次 IN 查询
func (d EdgeDAO[T]) RightsOf(ctx context.Context, left uint64, rights []uint64) (map[uint64]bool, error) {
	set := make(map[uint64]bool, len(rights))
	if len(rights) == 0 {
		return set, nil
	}
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Model(d.model()).
		Where(d.left+" = ? AND "+d.right+" IN ?", left, rights).
		Pluck(d.right, &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

type groupCount struct {
	RefID uint64
	Total int64
}

func countGroupBy[T any](ctx context.Context, db *gorm.DB, column string, keys []uint64) (map[uint64]int64, error) {
	result := make(map[uint64]int64, len(keys))
	if len(keys) == 0 {
		return result, nil
	}
	var rows []groupCount
	err := db.WithContext(ctx).
		Model(new(T)).
		Select(column + " AS ref_id, COUNT(*) AS total").
		Where(column+" IN ?", keys).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.RefID] = r.Total
	}
	return result, nil
}
