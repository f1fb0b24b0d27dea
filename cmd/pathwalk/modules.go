package main

import (
	"io"
	"log/slog"

	"github.com/0xalexb/pathwalk/config"
	filefetcher "github.com/0xalexb/pathwalk/config/fetcher/file"
	yamlparser "github.com/0xalexb/pathwalk/config/parser/yaml"
	"github.com/0xalexb/pathwalk/internal/shell"

	"github.com/goccy/go-yaml/ast"
	"go.uber.org/fx"
)

// documentModule provides the parsed document as an ast.Node.
func documentModule(file string) fx.Option {
	return fx.Module("document",
		fx.Provide(
			yamlparser.NewParser,
			fx.Annotate(
				filefetcher.NewFetcher(file),
				fx.ResultTags(`name:"document"`),
			),
			fx.Annotate(
				func(parser *yamlparser.Parser, fetcher *filefetcher.Fetcher) (ast.Node, error) {
					data, err := fetcher.Fetch()
					if err != nil {
						return nil, err
					}

					return parser.ParseDocument(data)
				},
				fx.ParamTags(``, `name:"document"`),
			),
		),
	)
}

// settingsModule provides the shell settings, read from the "shell" section
// of file when one is given.
func settingsModule(file string) fx.Option {
	if file == "" {
		return fx.Module("settings",
			fx.Provide(func() (*shell.Config, error) {
				cfg := &shell.Config{}
				cfg.SetDefaults()

				return cfg, cfg.Validate()
			}),
		)
	}

	return fx.Module("settings",
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(file),
				fx.ResultTags(`name:"settings"`),
			),
			fx.Annotate(
				func(parser *yamlparser.Parser, fetcher *filefetcher.Fetcher) (*shell.Config, error) {
					return config.Provider(&shell.Config{}, "shell")(parser, fetcher)
				},
				fx.ParamTags(``, `name:"settings"`),
			),
		),
	)
}

func shellModule(out io.Writer) fx.Option {
	return fx.Module("shell",
		fx.Provide(func(root ast.Node, cfg *shell.Config, logger *slog.Logger) (*shell.Shell, error) {
			return shell.New(root,
				shell.WithIndexer(yamlparser.Indexer),
				shell.WithRenderer(yamlparser.Render),
				shell.WithOutput(out),
				shell.WithColors(shell.NewColors(shell.ColorEnabled(cfg.Color, out))),
				shell.WithLogger(logger),
				shell.WithPrompt(cfg.Prompt),
			)
		}),
	)
}
