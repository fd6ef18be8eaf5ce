package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/microutils/settings"
	"github.com/microutils/settings/internal/conf"
	"github.com/microutils/settings/internal/l10n"
	"github.com/microutils/settings/internal/profile"
)

const defaultFile = "settings.cfg"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.T("error: %v", err))
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "settings",
		Usage:     l10n.T("read and edit key=value settings files"),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: l10n.T("directory of the settings file (default: executable directory)"),
				Value: conf.Configuration.Dir,
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   l10n.T("settings file name"),
				Value:   defaultFile,
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: l10n.T("text encoding of the settings file"),
				Value: conf.Configuration.Encoding,
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: l10n.T("kind of settings file, one of %v", profile.Kinds()),
				Value: conf.Configuration.Profile,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: l10n.T("log level (DEBUG, INFO, WARN, ERROR)"),
				Value: conf.Configuration.LogLevel.String(),
			},
		},
		Before: func(c *cli.Context) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     l10n.T("print the value of a key"),
				ArgsUsage: "KEY",
				Action:    getAction,
			},
			{
				Name:      "set",
				Usage:     l10n.T("set a key and save"),
				ArgsUsage: "KEY VALUE",
				Action:    setAction,
			},
			{
				Name:      "unset",
				Usage:     l10n.T("remove a key and save"),
				ArgsUsage: "KEY",
				Action:    unsetAction,
			},
			{
				Name:   "list",
				Usage:  l10n.T("print all keys and values"),
				Action: listAction,
			},
			{
				Name:   "reset",
				Usage:  l10n.T("overwrite keys with the profile defaults and save"),
				Action: resetAction,
			},
			{
				Name:   "path",
				Usage:  l10n.T("print the path of the settings file"),
				Action: pathAction,
			},
			{
				Name:   "exists",
				Usage:  l10n.T("report whether the settings file exists"),
				Action: existsAction,
			},
			{
				Name:   "export",
				Usage:  l10n.T("print the keys as TOML, or the profile keys as INI"),
				Flags:  []cli.Flag{formatFlag()},
				Action: exportAction,
			},
			{
				Name:      "import",
				Usage:     l10n.T("merge keys from a TOML file, or profile keys from an INI file, and save"),
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{formatFlag()},
				Action:    importAction,
			},
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Usage: l10n.T("document format: toml or ini"),
		Value: "toml",
	}
}

// source describes the settings file selected by the global flags.
func source(c *cli.Context) (settings.Source, error) {
	enc, err := settings.EncodingByName(c.String("encoding"))
	if err != nil {
		return settings.Source{}, err
	}
	kind, err := profile.Parse(c.String("profile"))
	if err != nil {
		return settings.Source{}, err
	}
	return settings.Source{
		Dir:      c.String("dir"),
		Name:     c.String("file"),
		Encoding: enc,
		Defaults: kind.Defaults(),
	}, nil
}

func openStore(c *cli.Context) (*settings.Store, error) {
	src, err := source(c)
	if err != nil {
		return nil, err
	}
	s, err := src.Open()
	if err != nil {
		// Load and write errors already name the file.
		return nil, fmt.Errorf("cannot open settings: %w", err)
	}
	return s, nil
}
