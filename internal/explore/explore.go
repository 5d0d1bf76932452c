// Package explore 在走法生成器之上做穷举前瞻：从一个局面出发枚举给定深度
// 内的所有着手序列，统计叶子局面数。不做跨分支的去重或记忆化，殊途同归
// 的局面会被重复计数，调用方靠深度上限控制规模。
package explore

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"shogi/internal/shogi"
)

// item 是工作栈上一个待展开的条目。
type item struct {
	pos   *shogi.Position
	depth int
}

// Count 统计从 pos 出发走满 depth 手后能到达的叶子局面数。已经分出胜负的
// 局面（当前手番能直接吃到对方的王）不再展开，按一个叶子计。ctx 取消时
// 丢弃进度尽快返回。
func Count(ctx context.Context, pos *shogi.Position, depth int) (int64, error) {
	stack := []item{{pos: pos, depth: depth}}
	var count int64
	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if it.depth == 0 {
			count++
			continue
		}
		moves := it.pos.GenerateMoves()
		if decided(moves) {
			count++
			continue
		}
		for _, m := range moves {
			stack = append(stack, item{pos: it.pos.Apply(m), depth: it.depth - 1})
		}
	}
	return count, nil
}

// decided 报告着手列表是否带着终局标记。生成器总把它放在末尾。
func decided(moves []shogi.Move) bool {
	n := len(moves)
	return n > 0 && moves[n-1].Kind == shogi.MoveTerminal
}

// CountParallel 把根局面的各个分支分派给固定数量的工作协程并行统计，
// 结果与 Count 一致。workers 小于 1 时取 CPU 数。
func CountParallel(ctx context.Context, pos *shogi.Position, depth, workers int) (int64, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if depth == 0 {
		return 1, nil
	}
	moves := pos.GenerateMoves()
	if decided(moves) {
		return 1, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan *shogi.Position)

	g.Go(func() error {
		defer close(jobs)
		for _, m := range moves {
			child := pos.Apply(m)
			select {
			case jobs <- child:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	var total int64
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for child := range jobs {
				n, err := Count(ctx, child, depth-1)
				if err != nil {
					return err
				}
				atomic.AddInt64(&total, n)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total, nil
}
