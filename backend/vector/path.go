// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package vector

import (
	"strings"

	"github.com/gogpu/picasso/surface"
)

// pathBuilder formats path commands as SVG path data. It satisfies
// surface.PathSink.
type pathBuilder struct {
	strings.Builder
}

func pathData(p *surface.Path) string {
	var b pathBuilder
	p.Walk(&b)
	return b.String()
}

func (b *pathBuilder) cmd(c byte, vs ...float64) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte(c)
	for _, v := range vs {
		b.WriteByte(' ')
		b.WriteString(num(v))
	}
}

func (b *pathBuilder) MoveTo(x, y float64) { b.cmd('M', x, y) }
func (b *pathBuilder) LineTo(x, y float64) { b.cmd('L', x, y) }

func (b *pathBuilder) QuadraticTo(cx, cy, x, y float64) {
	b.cmd('Q', cx, cy, x, y)
}

func (b *pathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.cmd('C', c1x, c1y, c2x, c2y, x, y)
}

func (b *pathBuilder) ClosePath() { b.cmd('Z') }

var _ surface.PathSink = (*pathBuilder)(nil)
