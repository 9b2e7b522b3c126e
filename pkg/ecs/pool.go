// Package ecs 提供实体存储容器
//
// 每种实体（靶子、粒子）使用一个固定字段的值类型，存放在按下标访问的 Pool 中。
// 迭代时通过下标引用实体，删除采用"先标记、后清理"的方式，
// 避免在遍历过程中原地删除导致的迭代器失效问题。
package ecs

// Index 是实体在 Pool 中的下标
// 下标只在两次 Sweep 之间有效
type Index int

// Pool 是一个可增长的实体数组（arena 风格）
// 实体按插入顺序存放，Sweep 后剩余实体的相对顺序保持不变
type Pool[T any] struct {
	items []T
	// 待删除标记，与 items 一一对应
	removed []bool
	// 待删除的实体数量
	pending int
}

// NewPool 创建一个新的 Pool，capacity 为预分配容量
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		items:   make([]T, 0, capacity),
		removed: make([]bool, 0, capacity),
	}
}

// Add 追加实体并返回其下标
func (p *Pool[T]) Add(item T) Index {
	p.items = append(p.items, item)
	p.removed = append(p.removed, false)
	return Index(len(p.items) - 1)
}

// At 返回指定下标实体的指针，用于原地修改
// 指针在下一次 Add 或 Sweep 之前有效
func (p *Pool[T]) At(i Index) *T {
	return &p.items[i]
}

// Len 返回当前存储的实体数量（包括已标记但未清理的实体）
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Live 返回未被标记删除的实体数量
func (p *Pool[T]) Live() int {
	return len(p.items) - p.pending
}

// Remove 标记实体待删除(不立即删除)
// 重复标记同一实体不会重复计数
func (p *Pool[T]) Remove(i Index) {
	if p.removed[i] {
		return
	}
	p.removed[i] = true
	p.pending++
}

// IsRemoved 检查实体是否已被标记删除
func (p *Pool[T]) IsRemoved(i Index) bool {
	return p.removed[i]
}

// Sweep 清理所有标记删除的实体
// 剩余实体向前压缩，保持插入顺序
func (p *Pool[T]) Sweep() {
	if p.pending == 0 {
		return
	}

	n := 0
	for i := range p.items {
		if p.removed[i] {
			continue
		}
		p.items[n] = p.items[i]
		p.removed[n] = false
		n++
	}

	// 清零尾部，避免保留旧值
	var zero T
	for i := n; i < len(p.items); i++ {
		p.items[i] = zero
	}

	p.items = p.items[:n]
	p.removed = p.removed[:n]
	p.pending = 0
}

// Clear 删除所有实体，保留底层容量
func (p *Pool[T]) Clear() {
	var zero T
	for i := range p.items {
		p.items[i] = zero
	}
	p.items = p.items[:0]
	p.removed = p.removed[:0]
	p.pending = 0
}

// Each 按插入顺序遍历未被标记删除的实体
// fn 返回 false 时停止遍历
func (p *Pool[T]) Each(fn func(i Index, item *T) bool) {
	for i := range p.items {
		if p.removed[i] {
			continue
		}
		if !fn(Index(i), &p.items[i]) {
			return
		}
	}
}

// EachReverse 按插入逆序遍历未被标记删除的实体（最新插入的优先）
// fn 返回 false 时停止遍历
func (p *Pool[T]) EachReverse(fn func(i Index, item *T) bool) {
	for i := len(p.items) - 1; i >= 0; i-- {
		if p.removed[i] {
			continue
		}
		if !fn(Index(i), &p.items[i]) {
			return
		}
	}
}
