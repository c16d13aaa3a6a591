// Package cli implements sivgen's command-line subcommands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/sivgen/internal/config"
	"github.com/zarlcorp/sivgen/internal/dataset"
	"github.com/zarlcorp/sivgen/internal/random"
	"github.com/zarlcorp/sivgen/internal/record"
	"golang.org/x/term"
)

// defaultNames is how many names `sivgen names` writes without --count.
const defaultNames = 100

var heading = lipgloss.NewStyle().Bold(true)

type runner struct {
	ctx    context.Context
	cfg    config.Config
	out    io.Writer
	styled bool
}

// New builds the sivgen command tree. Flag defaults come from cfg; output
// goes to out.
func New(ctx context.Context, cfg config.Config, version string, out io.Writer) *cli.App {
	r := &runner{ctx: ctx, cfg: cfg, out: out, styled: isTerminal(out)}

	app := cli.NewApp()
	app.Name = "sivgen"
	app.Usage = "generate synthetic plates, phone numbers and emails"
	app.Version = version
	app.Writer = out

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "dir, d",
			Usage: "directory holding every input and output file",
			Value: cfg.Dir,
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for reproducible output (0 uses crypto/rand)",
			Value: cfg.Seed,
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "print results as JSON",
		},
		cli.StringFlag{
			Name:  "log-level, l",
			Usage: "log level: debug, info, warn, error",
			Value: cfg.LogLevel,
		},
	}

	app.Before = func(c *cli.Context) error {
		lc := r.cfg
		lc.LogLevel = c.GlobalString("log-level")
		lvl, err := lc.Level()
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		return nil
	}

	countFlag := func(def int, usage string) cli.IntFlag {
		return cli.IntFlag{Name: "count, n", Value: def, Usage: usage}
	}

	app.Commands = []cli.Command{
		{
			Name:  "plate",
			Usage: "append random registration plates",
			Subcommands: []cli.Command{
				{
					Name:   "uk",
					Usage:  "UK plates (LL DD LLL)",
					Flags:  []cli.Flag{countFlag(1, "number of plates")},
					Action: r.repeat((*dataset.Dataset).UKPlate),
				},
				{
					Name:   "fr",
					Usage:  "French plates (LL-DDD-RR)",
					Flags:  []cli.Flag{countFlag(1, "number of plates")},
					Action: r.repeat((*dataset.Dataset).FrenchPlate),
				},
			},
		},
		{
			Name:   "phone",
			Usage:  "append random French mobile numbers",
			Flags:  []cli.Flag{countFlag(1, "number of phone numbers")},
			Action: r.repeat((*dataset.Dataset).FrenchPhone),
		},
		{
			Name:   "names",
			Usage:  "overwrite the names file with random full names",
			Flags:  []cli.Flag{countFlag(defaultNames, "number of names")},
			Action: r.names,
		},
		{
			Name:   "emails",
			Usage:  "derive first.last@example.com addresses from the names file",
			Action: r.emails,
		},
		{
			Name:   "combine",
			Usage:  "merge the four generated files into one shuffled file",
			Action: r.combine,
		},
		{
			Name:   "run",
			Usage:  "generate records, derive emails, then combine",
			Flags:  []cli.Flag{countFlag(cfg.Count, "records of each kind to generate (0 skips generation)")},
			Action: r.run,
		},
		{
			Name:  "version",
			Usage: "print the version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(r.out, "sivgen %s\n", version)
				return nil
			},
		},
	}

	return app
}

// dataset opens the configured directory and applies the global flags.
func (r *runner) dataset(c *cli.Context) (*dataset.Dataset, error) {
	dir := c.GlobalString("dir")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	fsys := zfilesystem.NewOSFileSystem(dir)
	gen := record.New(random.New(uint64(c.GlobalInt64("seed"))))
	return dataset.New(fsys, gen,
		dataset.WithPaths(r.cfg.Paths()),
		dataset.WithLogger(slog.Default().With("dir", dir)),
	), nil
}

func (r *runner) repeat(fn func(*dataset.Dataset) (string, error)) func(*cli.Context) error {
	return func(c *cli.Context) error {
		n := c.Int("count")
		if n < 1 {
			return fmt.Errorf("count must be at least 1, got %d", n)
		}

		d, err := r.dataset(c)
		if err != nil {
			return err
		}

		recs := make([]string, 0, n)
		for range n {
			rec, err := fn(d)
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return r.printList(c, recs)
	}
}

func (r *runner) names(c *cli.Context) error {
	d, err := r.dataset(c)
	if err != nil {
		return err
	}
	names, err := d.SeedNames(c.Int("count"))
	if err != nil {
		return err
	}
	return r.printList(c, names)
}

func (r *runner) emails(c *cli.Context) error {
	d, err := r.dataset(c)
	if err != nil {
		return err
	}
	emails, err := d.DeriveEmails()
	if err != nil {
		return err
	}
	return r.printList(c, emails)
}

func (r *runner) combine(c *cli.Context) error {
	d, err := r.dataset(c)
	if err != nil {
		return err
	}
	uk, french, phones, emails, err := d.Sources()
	if err != nil {
		return fmt.Errorf("combine: %w", err)
	}
	combined, err := d.Combine(uk, french, phones, emails)
	if err != nil {
		return err
	}
	return r.printList(c, combined)
}

func (r *runner) run(c *cli.Context) error {
	d, err := r.dataset(c)
	if err != nil {
		return err
	}

	report, runErr := d.Run(r.ctx, c.Int("count"))

	if c.GlobalBool("json") {
		if err := printJSON(r.out, report); err != nil {
			return err
		}
		return runErr
	}

	r.printReport(report)
	return runErr
}

func (r *runner) printList(c *cli.Context, recs []string) error {
	if c.GlobalBool("json") {
		if recs == nil {
			recs = []string{}
		}
		return printJSON(r.out, recs)
	}
	for _, s := range recs {
		fmt.Fprintln(r.out, s)
	}
	return nil
}

func (r *runner) printReport(report dataset.Report) {
	if !r.styled {
		fmt.Fprintln(r.out, report.Summary())
		return
	}

	if report.HasErrors() {
		fmt.Fprintln(r.out, heading.Render(zstyle.StatusErr.Render("run failed")))
	} else {
		fmt.Fprintln(r.out, heading.Render(zstyle.StatusOK.Render(fmt.Sprintf("combined %d records", len(report.Combined)))))
	}
	for _, s := range report.Steps {
		if s.Err != nil {
			fmt.Fprintln(r.out, "  "+zstyle.StatusErr.Render(s.Description+": "+s.Err.Error()))
			continue
		}
		fmt.Fprintln(r.out, "  "+zstyle.MutedText.Render(s.Description))
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
