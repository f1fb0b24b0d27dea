package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/pathwalk"
	"github.com/0xalexb/pathwalk/keypath"

	"github.com/chzyer/readline"
)

const helpText = `Commands:
  open <path>   start walking <path> from the document root
  next, n       step into the next key
  prev, p       step back to the parent value
  peek          show the next key and its value without moving
  back          show the previous key and value without moving
  key           show the current key
  value, v      show the current value
  path          show the keys walked so far
  remaining     show the keys still ahead
  depth         show current depth and path length
  reset         step back to the document root
  help          show this text
  exit, quit    leave the shell
`

var errNoWalk = errors.New("no path open; use open <path>")

// Renderer formats a walked value for output.
type Renderer func(any) string

// LineReader is the part of *readline.Instance the shell loop needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Options holds Shell settings.
type Options struct {
	Indexer  pathwalk.Indexer
	Renderer Renderer
	Output   io.Writer
	Colors   *Colors
	Logger   *slog.Logger
	Prompt   string
}

// Option defines a function type for applying Shell settings.
type Option func(*Options)

// WithIndexer sets the lookup used by every walker the shell opens.
func WithIndexer(indexer pathwalk.Indexer) Option {
	return func(opts *Options) {
		opts.Indexer = indexer
	}
}

// WithRenderer sets how values are printed.
func WithRenderer(renderer Renderer) Option {
	return func(opts *Options) {
		opts.Renderer = renderer
	}
}

// WithOutput sets where command output goes.
func WithOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.Output = w
	}
}

// WithColors sets the output formatters.
func WithColors(colors *Colors) Option {
	return func(opts *Options) {
		opts.Colors = colors
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithPrompt sets the prompt shown at the document root.
func WithPrompt(prompt string) Option {
	return func(opts *Options) {
		opts.Prompt = prompt
	}
}

// Shell interprets walk commands against one document.
type Shell struct {
	root    any
	walker  *pathwalk.Walker
	options Options
}

// New creates a Shell over root. No path is open until Open is called.
func New(root any, opts ...Option) (*Shell, error) {
	options := Options{
		Indexer:  pathwalk.DefaultIndexer,
		Renderer: func(value any) string { return fmt.Sprint(value) },
		Output:   io.Discard,
		Colors:   NewColors(false),
		Logger:   slog.Default(),
		Prompt:   DefaultPrompt,
	}

	for _, apply := range opts {
		apply(&options)
	}

	if root == nil {
		return nil, fmt.Errorf("creating shell: %w", pathwalk.ErrObjectRequired)
	}

	return &Shell{
		root:    root,
		options: options,
	}, nil
}

// Open replaces the current walk with a new one along path.
func (s *Shell) Open(path string) error {
	walker, err := pathwalk.New(s.root, path, pathwalk.WithIndexer(s.options.Indexer))
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}

	s.walker = walker
	s.options.Logger.Debug("walk opened",
		slog.String("path", path),
		slog.Int("keys", len(walker.Path())),
	)

	return nil
}

// Walker returns the current walker, nil before the first Open.
func (s *Shell) Walker() *pathwalk.Walker {
	return s.walker
}

// Prompt returns the configured prompt extended with the walked path.
func (s *Shell) Prompt() string {
	if s.walker == nil || s.walker.CurrentDepth() == 0 {
		return s.options.Prompt
	}

	base := strings.TrimRight(s.options.Prompt, "> ")

	return base + ":" + keypath.Format(s.walker.CurrentPath()) + "> "
}

// Run reads and executes commands until exit, end of input or an interrupt
// on an empty line.
func (s *Shell) Run(reader LineReader) error {
	s.options.Logger.Info("shell session started")
	defer s.options.Logger.Info("shell session ended")

	for {
		reader.SetPrompt(s.Prompt())

		line, err := reader.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}

				continue
			}

			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if s.Exec(line) {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the shell should exit.
// Failures are printed, never returned.
func (s *Shell) Exec(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	command := strings.ToLower(fields[0])
	args := strings.TrimSpace(strings.TrimSpace(line)[len(fields[0]):])

	var err error

	switch command {
	case "exit", "quit":
		return true
	case "help":
		s.print(helpText)
	case "open":
		err = s.open(args)
	default:
		err = s.navigate(command)
	}

	if err != nil {
		s.printf("%s\n", s.options.Colors.Error("Error: %s", err))
	}

	return false
}

func (s *Shell) open(path string) error {
	if path == "" {
		return errors.New("missing path argument")
	}

	err := s.Open(path)
	if err != nil {
		return err
	}

	s.printf("walking %s (%d keys)\n", s.options.Colors.Key("%s", path), len(s.walker.Path()))

	return nil
}

func (s *Shell) navigate(command string) error {
	switch command {
	case "next", "n", "prev", "p", "peek", "back", "key", "value", "v",
		"path", "remaining", "depth", "reset":
	default:
		return fmt.Errorf("unknown command %q, try help", command)
	}

	if s.walker == nil {
		return errNoWalk
	}

	switch command {
	case "next", "n":
		err := s.walker.Next()
		if err != nil {
			return err
		}

		s.showCurrent()
	case "prev", "p":
		err := s.walker.Previous()
		if err != nil {
			return err
		}

		s.showCurrent()
	case "peek":
		return s.peek()
	case "back":
		return s.back()
	case "key":
		key, ok := s.walker.CurrentKey()
		s.printf("%s\n", s.keyText(key, ok))
	case "value", "v":
		s.printf("%s\n", s.valueText(s.walker.CurrentValue()))
	case "path":
		s.printf("%s\n", s.pathText(s.walker.CurrentPath(), "(root)"))
	case "remaining":
		s.printf("%s\n", s.pathText(s.walker.RemainingPath(), "(end)"))
	case "depth":
		s.printf("%d/%d\n", s.walker.CurrentDepth(), len(s.walker.Path()))
	case "reset":
		for s.walker.HasPrevious() {
			_ = s.walker.Previous()
		}

		s.showCurrent()
	}

	return nil
}

func (s *Shell) peek() error {
	key, err := s.walker.NextKey()
	if err != nil {
		return err
	}

	value, err := s.walker.NextValue()
	if err != nil {
		return err
	}

	s.printf("next %s = %s\n", s.keyText(key, true), s.valueText(value))

	return nil
}

func (s *Shell) back() error {
	key, ok, err := s.walker.PreviousKey()
	if err != nil {
		return err
	}

	value, err := s.walker.PreviousValue()
	if err != nil {
		return err
	}

	s.printf("previous %s = %s\n", s.keyText(key, ok), s.valueText(value))

	return nil
}

func (s *Shell) showCurrent() {
	key, ok := s.walker.CurrentKey()
	s.printf("%s = %s\n", s.keyText(key, ok), s.valueText(s.walker.CurrentValue()))
}

func (s *Shell) keyText(key string, ok bool) string {
	if !ok {
		return s.options.Colors.Muted("(none)")
	}

	return s.options.Colors.Key("%s", key)
}

func (s *Shell) valueText(value any) string {
	if value == nil {
		return s.options.Colors.Muted("(missing)")
	}

	return s.options.Colors.Value("%s", s.options.Renderer(value))
}

func (s *Shell) pathText(keys []string, empty string) string {
	if len(keys) == 0 {
		return s.options.Colors.Muted("%s", empty)
	}

	return s.options.Colors.Key("%s", keypath.Format(keys))
}

func (s *Shell) print(text string) {
	_, _ = io.WriteString(s.options.Output, text)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.options.Output, format, args...)
}
