package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/algokit/internal/config"
	"github.com/katalvlaran/algokit/internal/logging"
)

// runner carries the resolved settings into command actions.
// It is filled by the app's Before hook.
type runner struct {
	cfg config.Config
	log hclog.Logger
}

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	r := &runner{cfg: config.Default(), log: hclog.NewNullLogger()}

	return &cli.App{
		Name:      "algokit",
		Usage:     "generic containers, sorting and dense matrices",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with log, sort and matrix defaults",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn, error or off",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "emit logs as JSON",
			},
		},
		Before: func(c *cli.Context) error {
			return r.setup(c, errOut)
		},
		Commands: []*cli.Command{
			r.sortCommand(),
			r.matrixCommand(),
			r.heapCommand(),
			r.stackCommand(),
			r.queueCommand(),
		},
	}
}

// setup applies defaults, then the config file, then global flags.
func (r *runner) setup(c *cli.Context, logOut io.Writer) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-json") {
		cfg.Log.JSON = c.Bool("log-json")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "resolving settings")
	}

	r.cfg = cfg
	r.log = logging.New(cfg.Log, logOut)
	r.log.Debug("settings resolved", "config", c.String("config"), "level", cfg.Log.Level)

	return nil
}
