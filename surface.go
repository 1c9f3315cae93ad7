package litho

import (
	"context"
	"runtime"
	"sync"

	"github.com/flywave/go3d/vec3"
)

// cancelCheckRows bounds cancellation latency inside a worker without
// paying a context check per pixel.
const cancelCheckRows = 32

// tessellate triangulates the depth buffer into the relief surface
// plus its four perimeter walls. Rows are partitioned into contiguous
// ranges across workers; each worker fills a private buffer and the
// buffers are concatenated in worker order afterwards, so the output
// always equals the single-threaded emission order.
func (g *Generator) tessellate(ctx context.Context, buf *depthBuffer) error {
	rows := buf.height - 1
	if rows < 1 {
		return ctx.Err()
	}

	workers := min(runtime.NumCPU(), rows)
	chunk := (rows + workers - 1) / workers
	parts := make([][]vec3.T, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		i := i
		start := i * chunk
		end := min(start+chunk, rows)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			parts[i] = g.tessellateRows(ctx, buf, start, end)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	for _, part := range parts {
		g.mesh.append(part...)
	}
	return nil
}

// tessellateRows emits rows yStart..yEnd-1. Per row: the left wall
// pair, then for each cell the row-0 top and bottom wall closures
// followed by the two surface triangles, then the right wall pair.
// Walls drop to the base plane at z = -MinThickness, closing the
// relief into a solid shell.
func (g *Generator) tessellateRows(ctx context.Context, buf *depthBuffer, yStart, yEnd int) []vec3.T {
	base := -g.config.MinThickness
	w := buf.width
	topRow := buf.row(0)
	bottomRow := buf.row(buf.height - 1)
	lastY := float32(buf.height - 1)
	lastX := float32(w - 1)

	out := make([]vec3.T, 0, (yEnd-yStart)*w*18)
	for y := yStart; y < yEnd; y++ {
		if (y-yStart)%cancelCheckRows == 0 && ctx.Err() != nil {
			return nil
		}
		row := buf.row(y)
		next := buf.row(y + 1)
		fy := float32(y)

		// close left side
		out = append(out,
			g.scaleVertex(0, fy, base),
			g.scaleVertex(0, fy, row[0]),
			g.scaleVertex(0, fy+1, next[0]),

			g.scaleVertex(0, fy+1, next[0]),
			g.scaleVertex(0, fy+1, base),
			g.scaleVertex(0, fy, base),
		)

		for x := 0; x < w-1; x++ {
			top := row[x]
			topRight := row[x+1]
			bottom := next[x]
			bottomRight := next[x+1]
			fx := float32(x)

			if y == 0 {
				// close top
				out = append(out,
					g.scaleVertex(fx+1, 0, topRow[x+1]),
					g.scaleVertex(fx, 0, topRow[x]),
					g.scaleVertex(fx, 0, base),

					g.scaleVertex(fx, 0, base),
					g.scaleVertex(fx+1, 0, base),
					g.scaleVertex(fx+1, 0, topRow[x+1]),
				)
				// close bottom
				out = append(out,
					g.scaleVertex(fx, lastY, base),
					g.scaleVertex(fx, lastY, bottomRow[x]),
					g.scaleVertex(fx+1, lastY, bottomRow[x+1]),

					g.scaleVertex(fx+1, lastY, bottomRow[x+1]),
					g.scaleVertex(fx+1, lastY, base),
					g.scaleVertex(fx, lastY, base),
				)
			}

			// two triangles per cell
			out = append(out,
				g.scaleVertex(fx, fy, top),
				g.scaleVertex(fx+1, fy+1, bottomRight),
				g.scaleVertex(fx, fy+1, bottom),

				g.scaleVertex(fx, fy, top),
				g.scaleVertex(fx+1, fy, topRight),
				g.scaleVertex(fx+1, fy+1, bottomRight),
			)
		}

		// close right side
		out = append(out,
			g.scaleVertex(lastX, fy+1, next[w-1]),
			g.scaleVertex(lastX, fy, row[w-1]),
			g.scaleVertex(lastX, fy, base),

			g.scaleVertex(lastX, fy, base),
			g.scaleVertex(lastX, fy+1, base),
			g.scaleVertex(lastX, fy+1, next[w-1]),
		)
	}
	return out
}
