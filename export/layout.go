// Package export turns the core's output values — a series/parallel
// tree, a reduction trace, superposition results — into plain text: a
// CircuitikZ schematic and a LaTeX solution writeup. Neither consumes
// live circuit state; both are pure functions over already-computed
// data, leaving any actual rendering to an external tool.
package export

import "dccircuit/tree"

// Point is a location on the 1cm schematic grid.
type Point struct{ X, Y int }

// Drawable is one schematic primitive ready for circuitikz.go to
// render: an element's endpoints on the grid, its kind, and its label.
type Drawable struct {
	Kind  string
	Label string
	From  Point
	To    Point
}

// Layout is a tree laid out on the 1cm grid: every drawable plus the
// grid extent it occupies.
type Layout struct {
	Drawables []Drawable
	Width     int
	Height    int
}

// Lay places root on the grid, oriented +→− along increasing X: a
// Series chain advances one column per atom; a Parallel block stacks
// its branches along Y, sharing the block's start and end columns, and
// pads any branch shorter than the widest one with a wire run so every
// branch closes on the same column.
func Lay(root tree.Node) *Layout {
	l := &Layout{}
	w, h := layoutNode(root, 0, 0, l)
	l.Width, l.Height = w, h
	return l
}

func gridWidth(n tree.Node) int {
	switch v := n.(type) {
	case *tree.Series:
		w := 0
		for _, c := range v.Children {
			w += gridWidth(c)
		}
		if w == 0 {
			return 1
		}
		return w
	case *tree.Parallel:
		w := 0
		for _, b := range v.Branches {
			if bw := gridWidth(b); bw > w {
				w = bw
			}
		}
		return w
	default:
		return 1
	}
}

func layoutNode(n tree.Node, x, y int, l *Layout) (endX, height int) {
	switch v := n.(type) {
	case *tree.Atom:
		l.Drawables = append(l.Drawables, Drawable{
			Kind: string(v.Kind), Label: v.Name,
			From: Point{x, y}, To: Point{x + 1, y},
		})
		return x + 1, 1
	case *tree.Series:
		cx := x
		height = 1
		for _, c := range v.Children {
			var h int
			cx, h = layoutNode(c, cx, y, l)
			if h > height {
				height = h
			}
		}
		return cx, height
	case *tree.Parallel:
		w := gridWidth(v)
		by := y
		for i, b := range v.Branches {
			bx, bh := layoutNode(b, x, by, l)
			if bx < x+w {
				l.Drawables = append(l.Drawables, Drawable{
					Kind: "wire", From: Point{bx, by}, To: Point{x + w, by},
				})
			}
			if i > 0 {
				l.Drawables = append(l.Drawables,
					Drawable{Kind: "wire", From: Point{x, y}, To: Point{x, by}},
					Drawable{Kind: "wire", From: Point{x + w, y}, To: Point{x + w, by}},
				)
			}
			by += bh
			height += bh
		}
		return x + w, height
	default:
		return x + 1, 1
	}
}
