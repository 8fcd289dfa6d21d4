package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	texttag "github.com/starfederation/texttag-go"
	"github.com/starfederation/texttag-go/internal/config"
	"github.com/starfederation/texttag-go/internal/logging"
)

type cli struct {
	Config   string `help:"TOML configuration file." type:"path" short:"c"`
	LogLevel string `help:"Log level (overrides the configuration)." name:"log-level"`

	Decode decodeCmd `cmd:"" help:"Convert packed hex bytes to text form."`
	Encode encodeCmd `cmd:"" help:"Convert text form to packed hex bytes."`
	Export exportCmd `cmd:"" help:"Export a catalog snapshot as JSON records."`
	Import importCmd `cmd:"" help:"Import JSON records into a catalog snapshot."`
	Pack   packCmd   `cmd:"" help:"Build a catalog snapshot from JSON records."`
	Vocab  vocabCmd  `cmd:"" help:"List tag and parameter names."`
}

// env is bound into every command's Run.
type env struct {
	codec  *texttag.Codec
	log    zerolog.Logger
	stdout io.Writer
}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("ztrtag"),
		kong.Description("Convert inline tags in packed game text between binary and text form."),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(args.Config)
	ctx.FatalIfErrorf(err)
	level := cfg.LogLevel
	if args.LogLevel != "" {
		level = args.LogLevel
	}
	logger, err := logging.New(os.Stderr, level)
	ctx.FatalIfErrorf(err)
	codec, err := cfg.Codec()
	ctx.FatalIfErrorf(err)

	logger.Debug().Str("config", args.Config).Str("charset", cfg.Charset).Msg("configured")
	err = ctx.Run(&env{codec: codec, log: logger, stdout: os.Stdout})
	if err != nil {
		logger.Error().Err(err).Str("command", ctx.Command()).Msg("failed")
		os.Exit(1)
	}
}
