package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bstree/Trees"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "bstdemo",
		Usage: "play with an unbalanced binary search tree of ints",
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level",
			Value:   "info",
			EnvVars: []string{"BSTDEMO_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "trace",
			Usage:   "log every tree mutation, implies --log-level=debug",
			EnvVars: []string{"BSTDEMO_TRACE"},
		},
		&cli.StringFlag{
			Name:    "values",
			Usage:   "comma separated values the tree starts with",
			EnvVars: []string{"BSTDEMO_VALUES"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "menu",
			Usage:  "interactive menu reading commands from stdin (default)",
			Action: runMenu,
		},
		{
			Name:   "dump",
			Usage:  "print the tree with downside steps, left before right",
			Action: runDump,
		},
		{
			Name:  "measure",
			Usage: "benchmark building trees from random and from sorted input",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "n",
					Usage: "number of values per tree",
					Value: 10000,
				},
				&cli.IntFlag{
					Name:  "rounds",
					Usage: "number of benchmark rounds per input",
					Value: 5,
				},
			},
			Action: runMeasure,
		},
	}
	app.Action = runMenu
	return app
}

// newLogger writes JSON logs to the app's error writer at --log-level.
func newLogger(cctx *cli.Context) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cctx.String("log-level"))
	if err != nil {
		return nil, err
	}
	if cctx.Bool("trace") {
		lvl = zapcore.DebugLevel
	}
	w := cctx.App.ErrWriter
	if w == nil {
		w = os.Stderr
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), lvl)), nil
}

// newTree builds the tree of --values, tracing it when --trace is set.
func newTree(cctx *cli.Context, logger *zap.Logger) (*Trees.BSTree[int, uint], error) {
	var opts []Trees.Option
	if cctx.Bool("trace") {
		opts = append(opts, Trees.WithLogger(logger.Named("tree")))
	}
	tree := Trees.New[int, uint](0, opts...)
	if s := cctx.String("values"); s != "" {
		for _, f := range strings.Split(s, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("invalid value %q: %w", f, err)
			}
			tree.Append(v)
		}
	}
	return tree, nil
}

func runDump(cctx *cli.Context) error {
	logger, err := newLogger(cctx)
	if err != nil {
		return err
	}
	defer logger.Sync()
	tree, err := newTree(cctx, logger)
	if err != nil {
		return err
	}
	return dump(cctx.App.Writer, tree)
}
