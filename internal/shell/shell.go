package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/neexbeast/holiday-tracker/internal/holiday"
	"github.com/neexbeast/holiday-tracker/internal/store"
)

const clearScreen = "\033[H\033[2J"

var (
	errDateFormat = errors.New("date must look like dd-mm")
	errDateValue  = errors.New("day and month must be numbers")
)

// Shell is the interactive text menu over a holiday store.
type Shell struct {
	q           Queries
	in          *bufio.Scanner
	out         io.Writer
	log         *slog.Logger
	interactive bool
}

// New constructs a Shell reading commands from in and writing to out.
// When interactive is true the shell waits for Enter and clears the screen
// after every command.
func New(q Queries, in io.Reader, out io.Writer, interactive bool, log *slog.Logger) *Shell {
	return &Shell{
		q:           q,
		in:          bufio.NewScanner(in),
		out:         out,
		log:         log,
		interactive: interactive,
	}
}

// IsTerminal reports whether both in and out are attached to a terminal.
func IsTerminal(in, out *os.File) bool {
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// ReportLoadFailures prints one line per year that could not be fetched.
func (s *Shell) ReportLoadFailures(failures map[int]error) {
	years := make([]int, 0, len(failures))
	for y := range failures {
		years = append(years, y)
	}
	slices.Sort(years)
	for _, y := range years {
		s.printf("Could not load holidays for %d: %v\n", y, failures[y])
	}
	if len(years) > 0 {
		s.printf("\n")
	}
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.menu()
		choice, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		s.printf("\n")

		switch choice {
		case "1":
			ok = s.showByYear()
		case "2":
			ok = s.searchByDate()
		case "3":
			ok = s.searchByName()
		case "4":
			s.showAll()
		case "5":
			s.printf("Exiting...\n")
			return nil
		default:
			s.printf("Invalid choice, please enter a value between 1 and 5.\n\n")
		}
		if !ok {
			return s.in.Err()
		}

		if !s.pause() {
			return s.in.Err()
		}
	}
}

func (s *Shell) menu() {
	s.printf("===== PublicHolidayTracker =====\n")
	s.printf("1. List holidays (choose a year)\n")
	s.printf("2. Search holidays by date (dd-mm)\n")
	s.printf("3. Search holidays by name\n")
	s.printf("4. Show all holidays (%s)\n", s.yearSpan())
	s.printf("5. Exit\n")
	s.printf("Your choice: ")
}

// showByYear returns false when input ended.
func (s *Shell) showByYear() bool {
	s.printf("Enter year (%s): ", s.yearList())
	input, ok := s.readLine()
	if !ok {
		return false
	}

	year, err := strconv.Atoi(input)
	if err != nil {
		s.printf("Invalid year.\n\n")
		return true
	}

	holidays, err := s.q.ByYear(year)
	if errors.Is(err, store.ErrYearNotConfigured) {
		s.printf("Invalid year.\n\n")
		return true
	}
	if len(holidays) == 0 {
		s.printf("No holidays found for %d.\n\n", year)
		return true
	}

	s.printf("\nPublic holidays in %d:\n\n", year)
	for _, h := range holidays {
		s.printHoliday(h)
	}
	s.printf("\n")
	return true
}

func (s *Shell) searchByDate() bool {
	s.printf("Enter date (dd-mm, e.g. 01-01): ")
	input, ok := s.readLine()
	if !ok {
		return false
	}

	day, month, err := parseDayMonth(input)
	switch {
	case errors.Is(err, errDateFormat):
		s.printf("Invalid format. Example: 23-04\n\n")
		return true
	case err != nil:
		s.printf("Invalid date. Example: 23-04\n\n")
		return true
	}

	s.printMatches(s.q.ByDayMonth(day, month), "No public holiday falls on this date.")
	return true
}

func (s *Shell) searchByName() bool {
	s.printf("Enter holiday name (local or English): ")
	input, ok := s.readLine()
	if !ok {
		return false
	}

	matches, err := s.q.ByName(input)
	if errors.Is(err, store.ErrEmptyQuery) {
		s.printf("Search text cannot be empty.\n\n")
		return true
	}

	s.printMatches(matches, "No public holiday matches this name.")
	return true
}

func (s *Shell) showAll() {
	s.printf("All public holidays %s:\n\n", s.yearSpan())
	for _, g := range s.q.All() {
		s.printf("--- %d ---\n", g.Year)
		if len(g.Holidays) == 0 {
			s.printf("No holidays found.\n\n")
			continue
		}
		for _, h := range g.Holidays {
			s.printHoliday(h)
		}
		s.printf("\n")
	}
}

// pause waits for Enter and clears the screen on a terminal.
func (s *Shell) pause() bool {
	if !s.interactive {
		return true
	}
	s.printf("Press Enter to continue...")
	if _, ok := s.readLine(); !ok {
		return false
	}
	s.printf(clearScreen)
	return true
}

func (s *Shell) printHoliday(h holiday.Holiday) {
	s.printf("%s - %s (%s) - Global: %t\n", h.Date, h.LocalName, h.Name, h.IsGlobal)
}

func (s *Shell) printMatches(matches []store.Match, none string) {
	if len(matches) == 0 {
		s.printf("%s\n\n", none)
		return
	}
	s.printf("\nHolidays found:\n\n")
	for _, m := range matches {
		s.printf("%d - %s - %s (%s)\n", m.Year, m.Date, m.LocalName, m.Name)
	}
	s.printf("\n")
}

func (s *Shell) yearList() string {
	years := s.q.Years()
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, " / ")
}

func (s *Shell) yearSpan() string {
	years := s.q.Years()
	switch len(years) {
	case 0:
		return "no years configured"
	case 1:
		return strconv.Itoa(years[0])
	default:
		return fmt.Sprintf("%d-%d", years[0], years[len(years)-1])
	}
}

// readLine returns the next trimmed input line; ok is false at end of input.
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		s.log.Debug("write to output failed", "err", err)
	}
}

// parseDayMonth parses "dd-mm". Values are not range checked.
func parseDayMonth(input string) (day, month int, err error) {
	if input == "" || !strings.Contains(input, "-") {
		return 0, 0, errDateFormat
	}

	parts := strings.FieldsFunc(input, func(r rune) bool { return r == '-' })
	if len(parts) != 2 {
		return 0, 0, errDateValue
	}

	day, dErr := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, mErr := strconv.Atoi(strings.TrimSpace(parts[1]))
	if dErr != nil || mErr != nil {
		return 0, 0, errDateValue
	}

	return day, month, nil
}
