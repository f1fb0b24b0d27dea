package shell

import (
	"fmt"

	"github.com/chzyer/readline"
)

var completer = readline.NewPrefixCompleter( //nolint:gochecknoglobals // static completion tree.
	readline.PcItem("open"),
	readline.PcItem("next"),
	readline.PcItem("prev"),
	readline.PcItem("peek"),
	readline.PcItem("back"),
	readline.PcItem("key"),
	readline.PcItem("value"),
	readline.PcItem("path"),
	readline.PcItem("remaining"),
	readline.PcItem("depth"),
	readline.PcItem("reset"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)

// NewReadline creates the terminal line reader for a session. History is
// kept only when cfg.HistoryFile is set.
func NewReadline(cfg Config) (*readline.Instance, error) {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing readline: %w", err)
	}

	return rl, nil
}
