package snowflake

import (
	"sync/atomic"

	"github.com/bwmarrin/snowflake"
)

var node atomic.Pointer[snowflake.Node]

func init() {
	n, _ := snowflake.NewNode(1)
	node.Store(n)
}

// SetNode 多实例部署时每个实例需要不同的节点号（0-1023）
func SetNode(id int64) error {
	n, err := snowflake.NewNode(id)
	if err != nil {
		return err
	}
	node.Store(n)
	return nil
}

// GenID 生成行主键
func GenID() uint64 {
	return uint64(node.Load().Generate().Int64())
}
