package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	urfave "github.com/urfave/cli/v2"

	"github.com/idilsaglam/library/internal/config"
	"github.com/idilsaglam/library/internal/model"
	"github.com/idilsaglam/library/internal/session"
	"github.com/idilsaglam/library/internal/store/jsonstore"
	"github.com/idilsaglam/library/internal/tui"
	"github.com/idilsaglam/library/internal/ui"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// Options wire the runner to its streams. Zero fields mean the process's own.
type Options struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

func (o Options) withDefaults() Options {
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	return o
}

const (
	configFlag    = "config"
	booksFlag     = "books"
	themeFlag     = "theme"
	noColorFlag   = "no-color"
	tuiFlag       = "tui"
	verbosityFlag = "verbosity"
)

func flags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.StringFlag{
			Name:    configFlag,
			Aliases: []string{"c"},
			Usage:   "TOML settings file",
		},
		&urfave.StringFlag{
			Name:  booksFlag,
			Usage: "JSON file seeding the catalog (default: built-in shelf)",
		},
		&urfave.StringFlag{
			Name:  themeFlag,
			Usage: "color theme: " + strings.Join(ui.Themes, ", "),
		},
		&urfave.BoolFlag{
			Name:  noColorFlag,
			Usage: "plain output without colors",
		},
		&urfave.BoolFlag{
			Name:  tuiFlag,
			Usage: "full-screen interface",
		},
		&urfave.StringFlag{
			Name:  verbosityFlag,
			Usage: "log level on stderr: debug, info, warn, error",
		},
	}
}

// NewApp builds the command line application.
func NewApp(opt Options) *urfave.App {
	opt = opt.withDefaults()
	return &urfave.App{
		Name:      "library",
		Usage:     "interactive library management demo",
		UsageText: "library [options]",
		Flags:     flags(),
		Writer:    opt.Stdout,
		ErrWriter: opt.Stderr,
		Action: func(c *urfave.Context) error {
			if c.NArg() > 0 {
				return urfave.Exit("unexpected argument: "+c.Args().First(), exitUsage)
			}
			return run(c, opt)
		},
		OnUsageError: func(_ *urfave.Context, err error, _ bool) error {
			return urfave.Exit(err.Error(), exitUsage)
		},
		// Exit codes are decided by Run, not by the library calling os.Exit.
		ExitErrHandler: func(*urfave.Context, error) {},
	}
}

// Run executes the application and returns the process exit code
// (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt = opt.withDefaults()
	err := NewApp(opt).Run(args)
	if err == nil {
		return exitOK
	}
	fail(opt.Stderr, err.Error())
	var ec urfave.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return exitFailure
}

func run(c *urfave.Context, opt Options) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(opt.Stderr, &slog.HandlerOptions{Level: settings.LogLevel()}))

	books := model.DefaultBooks()
	if settings.Books != "" {
		if books, err = jsonstore.Load(settings.Books); err != nil {
			return urfave.Exit("load books: "+err.Error(), exitFailure)
		}
	}
	log.Debug("Catalog seeded", "books", len(books), "source", settings.Books)

	m := session.NewMachine(
		model.NewCatalog(books...),
		model.NewLibrarian(settings.Librarian.Name, settings.Librarian.EmployeeID),
		log,
	)
	if settings.TUI {
		return tui.Run(m, settings.Theme, settings.NoColor, opt.Stdout)
	}

	var in session.Prompter
	if f, ok := opt.Stdin.(*os.File); ok && f == os.Stdin {
		in = session.NewPrompter()
	} else {
		in = session.NewDumbPrompter(opt.Stdin, opt.Stdout)
	}
	out := ui.NewPrinter(opt.Stdout, settings.Theme, settings.NoColor)
	return session.New(m, in, out, log).Run()
}

// loadSettings layers flags over the config file over defaults.
func loadSettings(c *urfave.Context) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if path := c.String(configFlag); path != "" {
		s, err := config.Load(path)
		if err != nil {
			return nil, urfave.Exit("config: "+err.Error(), exitFailure)
		}
		settings = s
	}
	if c.IsSet(booksFlag) {
		settings.Books = c.String(booksFlag)
	}
	if c.IsSet(themeFlag) {
		settings.Theme = c.String(themeFlag)
	}
	if c.IsSet(noColorFlag) {
		settings.NoColor = c.Bool(noColorFlag)
	}
	if c.IsSet(tuiFlag) {
		settings.TUI = c.Bool(tuiFlag)
	}
	if c.IsSet(verbosityFlag) {
		settings.Verbosity = c.String(verbosityFlag)
	}

	if !slices.Contains(ui.Themes, strings.ToLower(settings.Theme)) {
		return nil, urfave.Exit(fmt.Sprintf("unknown theme %q (want %s)", settings.Theme, strings.Join(ui.Themes, ", ")), exitUsage)
	}
	if err := settings.Validate(); err != nil {
		return nil, urfave.Exit(err.Error(), exitUsage)
	}
	return settings, nil
}

func fail(w io.Writer, msg string) {
	ui.NewPrinter(w, "classic", false).Fail(msg)
}
