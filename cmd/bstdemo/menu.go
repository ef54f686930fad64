package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bstree/Trees"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const menuText = `1 <value>  append
2 <value>  remove
3          size
4          dump
5          list in order
0          quit
`

func runMenu(cctx *cli.Context) error {
	logger, err := newLogger(cctx)
	if err != nil {
		return err
	}
	defer logger.Sync()
	tree, err := newTree(cctx, logger)
	if err != nil {
		return err
	}
	logger = logger.With(zap.String("source", "menu"))

	w := cctx.App.Writer
	fmt.Fprint(w, menuText)
	sc := bufio.NewScanner(cctx.App.Reader)
	for sc.Scan() {
		fs := strings.Fields(sc.Text())
		if len(fs) == 0 {
			continue
		}
		switch fs[0] {
		case "0":
			return nil
		case "1", "2":
			if len(fs) != 2 {
				fmt.Fprintf(w, "%s needs one value\n", fs[0])
				continue
			}
			v, err := strconv.Atoi(fs[1])
			if err != nil {
				fmt.Fprintf(w, "invalid value %q\n", fs[1])
				continue
			}
			if fs[0] == "1" {
				if tree.Append(v) {
					fmt.Fprintf(w, "appended %d\n", v)
				} else {
					fmt.Fprintf(w, "%d already present\n", v)
				}
			} else if tree.Remove(v) {
				fmt.Fprintf(w, "removed %d\n", v)
			} else {
				fmt.Fprintf(w, "%d not present\n", v)
			}
		case "3":
			fmt.Fprintf(w, "size %d\n", tree.Size())
		case "4":
			if err := dump(w, tree); err != nil {
				return err
			}
		case "5":
			vs := make([]string, 0, tree.Size())
			for v := range tree.All() {
				vs = append(vs, strconv.Itoa(v))
			}
			fmt.Fprintln(w, strings.Join(vs, " "))
		default:
			fmt.Fprintf(w, "unknown command %q\n", fs[0])
			fmt.Fprint(w, menuText)
		}
	}
	if err := sc.Err(); err != nil {
		logger.Error("failed to read input", zap.Error(err))
		return err
	}
	return nil
}

// dump prints every node indented by its depth, visiting Minus(1) before Plus(1).
func dump(w io.Writer, tree *Trees.BSTree[int, uint]) error {
	if tree.Empty() {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	st := []Trees.Iterator[int, uint]{tree.Begin()}
	for len(st) > 0 {
		it := st[len(st)-1]
		st = st[:len(st)-1]
		if !it.Valid() {
			continue
		}
		d, err := tree.Depth(it)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%d\n", strings.Repeat("  ", int(d)), it.Value()); err != nil {
			return err
		}
		st = append(st, it.Plus(1), it.Minus(1))
	}
	return nil
}
