package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tidwall/buntdb"
	"github.com/urfave/cli/v2"

	"wlog/view"
	"wlog/wlog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Name:  "wlog",
		Usage: "track your OJT hours by logging your shifts",
		Commands: []*cli.Command{
			logCommand,
			rmCommand,
			targetCommand,
			statusCommand,
			weekCommand,
			logsCommand,
			viewCommand,
		},
	}
	return app.Run(os.Args)
}

const welcome = `Welcome to WLog!
Stop counting hours, WLog does it for you.
Set your target with "wlog target <hours>" and log a day with "wlog log".
`

var logCommand = &cli.Command{
	Name:  "log",
	Usage: "log one day's morning and afternoon shift",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "day to log (yyyy-mm-dd), default today"},
		&cli.StringFlag{Name: "morning", Aliases: []string{"m"}, Usage: "morning in-out, ex: 9:00-12:00"},
		&cli.StringFlag{Name: "afternoon", Aliases: []string{"a"}, Usage: "afternoon in-out, ex: 1:00-5:30"},
	},
	Action: withLogbook(func(c *cli.Context, book wlog.Logbook) error {
		date := wlog.Today()
		if d := c.String("date"); d != "" {
			if _, err := wlog.Date(d).Time(); err != nil {
				return fmt.Errorf("invalid date %q, want yyyy-mm-dd", d)
			}
			date = wlog.Date(d)
		}

		var entry wlog.ShiftEntry
		var err error
		if entry.MorningIn, entry.MorningOut, err = parseRange(c.String("morning")); err != nil {
			return err
		}
		if entry.AfternoonIn, entry.AfternoonOut, err = parseRange(c.String("afternoon")); err != nil {
			return err
		}

		minutes := entry.TotalMinutes()
		if err := book.Add(date, minutes); err != nil {
			if errors.Is(err, wlog.ErrDuplicateEntry) {
				fmt.Println("Oops, you are working twice a day? Relax a little")
				return nil
			}
			return err
		}
		if minutes <= 0 {
			fmt.Printf("No OJT hours recorded for %s\n", date)
			return nil
		}
		fmt.Printf("Date: %s, Total Hours for the day: %d hours and %d minutes\n",
			date, minutes/60, minutes%60)
		return nil
	}),
}

var rmCommand = &cli.Command{
	Name:      "rm",
	Usage:     "remove a logged day",
	ArgsUsage: "<yyyy-mm-dd>",
	Action: withLogbook(func(c *cli.Context, book wlog.Logbook) error {
		date := wlog.Date(c.Args().First())
		if date == "" {
			return fmt.Errorf("usage: wlog rm <yyyy-mm-dd>")
		}
		if err := book.Remove(date); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", date)
		return nil
	}),
}

var targetCommand = &cli.Command{
	Name:      "target",
	Usage:     "set the required OJT hours",
	ArgsUsage: "<hours>",
	Action: withLogbook(func(c *cli.Context, book wlog.Logbook) error {
		book.SetRequiredHoursText(c.Args().First())
		fmt.Printf("Required OJT Hours: %g\n", book.RequiredHours())
		return nil
	}),
}

var statusCommand = &cli.Command{
	Name:  "status",
	Usage: "show progress toward the required hours",
	Action: withLogbook(func(c *cli.Context, book wlog.Logbook) error {
		if book.FirstLaunch() {
			fmt.Print(welcome)
		}
		fmt.Println(view.Tagline())
		view.RenderStatus(newTableWriter(), book)
		return nil
	}),
}

var weekCommand = &cli.Command{
	Name:  "week",
	Usage: "show the last seven days",
	Action: withLogbook(func(c *cli.Context, book wlog.Logbook) error {
		view.RenderWeek(newTableWriter(), book, wlog.Today())
		return nil
	}),
}

var logsCommand = &cli.Command{
	Name:  "logs",
	Usage: "list logged days, newest first",
	Action: withLogbook(func(c *cli.Context, book wlog.Logbook) error {
		view.RenderLogs(newTableWriter(), book)
		return nil
	}),
}

var viewCommand = &cli.Command{
	Name:      "view",
	Usage:     "browse and edit the log interactively",
	ArgsUsage: "[yyyy-mm]",
	Action: withLogbook(func(c *cli.Context, book wlog.Logbook) error {
		v := view.NewTUI(book, newLogger())
		return v.Do(c.Args().First())
	}),
}

// withLogbook opens the database, wires the logbook and tears both down
// after the command, draining pending writes.
func withLogbook(action func(c *cli.Context, book wlog.Logbook) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		db, err := initDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := wlog.NewLogRepository(db)
		book, err := wlog.NewLogbook(repo, newLogger())
		if err != nil {
			return err
		}
		defer book.Close()

		return action(c, book)
	}
}

// parseRange splits "in-out" into two times of day. An empty range reads
// as 0:00-0:00, an untouched shift.
func parseRange(s string) (wlog.TimeOfDay, wlog.TimeOfDay, error) {
	if s == "" {
		return wlog.TimeOfDay{}, wlog.TimeOfDay{}, nil
	}
	ins, outs, ok := strings.Cut(s, "-")
	if !ok {
		return wlog.TimeOfDay{}, wlog.TimeOfDay{}, fmt.Errorf("invalid range %q, want in-out ex: 9:00-12:00", s)
	}
	in, err := wlog.ParseTimeOfDay(ins)
	if err != nil {
		return wlog.TimeOfDay{}, wlog.TimeOfDay{}, err
	}
	out, err := wlog.ParseTimeOfDay(outs)
	if err != nil {
		return wlog.TimeOfDay{}, wlog.TimeOfDay{}, err
	}
	return in, out, nil
}

func newTableWriter() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	return t
}

func initDB() (*buntdb.DB, error) {
	dir, err := getWlogDir()
	if err != nil {
		return nil, err
	}

	db, err := buntdb.Open(filepath.Join(dir, "wlog.db"))
	if err != nil {
		return nil, err
	}
	return db, nil
}

func newLogger() *slog.Logger {
	dir, err := getWlogDir()
	if err != nil {
		panic(err)
	}
	logFile, err := os.OpenFile(filepath.Join(dir, "log.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(err)
	}

	return slog.New(
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}),
	)
}

func getWlogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".wlog")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.Mkdir(dir, 0755); err != nil {
			return "", err
		}
	}
	return dir, nil
}
