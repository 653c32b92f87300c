package router

import (
	"sort"

	"canny-backend/internal/transport/http/ez"
)

// Module 每个资源一个模块，自行挂载公开/鉴权路由
type Module interface {
	Mount(public, authed ez.EZ)
}

// 可选：实现该接口可控制挂载顺序（数值越小越先挂）
// 不实现则默认 100
type prioritizer interface{ Priority() int }

// MountAll 按优先级挂载模块；模块列表由调用方显式传入
func MountAll(public, authed ez.EZ, mods ...Module) {
	mods = append([]Module(nil), mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.Mount(public, authed)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
