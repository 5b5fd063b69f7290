package mathify

import (
	"github.com/riverfjs/mathify-go/internal/types"
)

// ErrInvalidConfig 配置错误哨兵
//
// 非法正则、空定界符、非法命名空间都包装它，用 errors.Is 判断。
// 配置错误在遍历开始之前返回；一旦遍历开始就保证跑完。
var ErrInvalidConfig = types.ErrInvalidConfig
