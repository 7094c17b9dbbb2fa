package service

import (
	"fmt"

	"Quill/dao"
	"Quill/pkg/log"

	"go.uber.org/zap"
)

// guard 写操作：存储不可达转成 Unavailable，业务错误原样返回，其他错误包上操作名
func guard(op string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != 0 {
		return err
	}
	if dao.IsUnavailable(err) {
		log.L.Warn("store unavailable", zap.String("op", op), zap.Error(err))
		return ErrUnavailable(err)
	}
	log.L.Error("store error", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}

// degrade 读操作：accept 认可的错误替换为默认值并吞掉，其余照常返回
func degrade[T any](op string, def T, accept func(error) bool, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err == nil {
		return v, nil
	}
	if accept(err) {
		log.L.Warn("read degraded", zap.String("op", op), zap.Error(err))
		return def, nil
	}
	return v, err
}

// soft 任何错误都降级
func soft[T any](op string, def T, fn func() (T, error)) T {
	v, _ := degrade(op, def, anyError, fn)
	return v
}

func anyError(error) bool { return true }

func unavailable(err error) bool { return dao.IsUnavailable(err) }
