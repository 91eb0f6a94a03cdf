package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
)

// CLI is the command line of ircmsg.
type CLI struct {
	Verbose int    `short:"v" type:"counter" help:"Increase log verbosity (-v info, -vv debug)."`
	Config  string `short:"F" placeholder:"PATH" help:"Config file (.cue, .yaml, .json or .toml). Defaults to ircmsg/config.toml in the user config directory."`

	Parse   ParseCmd   `cmd:"" help:"Parse message lines and print their parts."`
	Compose ComposeCmd `cmd:"" help:"Build a message line from flags."`
	Sign    SignCmd    `cmd:"" help:"Sign message lines with a vendor hash."`
	Verify  VerifyCmd  `cmd:"" help:"Verify signed message lines."`
}

// streams are the standard streams handed to every command.
type streams struct {
	in  io.Reader
	out io.Writer
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("ircmsg"),
		kong.Description("Parse, build, sign and verify IRC message lines."),
		kong.UsageOnError(),
		kong.Vars{"algorithms": algorithmsVar()},
	}, options...)
	return kong.New(cli, options...)
}

func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose == 1:
		level = slog.LevelInfo
	case verbose >= 2:
		level = slog.LevelDebug
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	logger := newLogger(os.Stderr, cli.Verbose)

	cfg, err := loadConfig(cli.Config, logger)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	err = ctx.Run(logger, cfg, &streams{in: os.Stdin, out: os.Stdout})
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
