package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/circulation/internal/library"
	"github.com/lehigh-university-libraries/circulation/internal/suggest"
	"github.com/spf13/cobra"
)

const shellHelp = `Commands:
  list              books available to borrow
  all               every book, with loan status
  search <query>    find books by title or author
  borrow <title>    borrow a book
  return <title>    return a borrowed book
  loans             books currently on loan
  suggest <query>   look up books to add
  accept <n>        add suggestion n to the catalog
  help              show this message
  quit              leave the shell`

func newShellCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive catalog and loan shell",
		Long: `Starts a line-oriented prompt over the seed catalog.

Loans and added books last until the shell exits.`,
		Example: `  circulation shell
  circulation shell --seed books.yaml --source openlibrary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := flags.config()
			books, err := catalog(cfg)
			if err != nil {
				return err
			}
			src, err := suggester(cmd, cfg)
			if err != nil {
				return err
			}

			s := &shell{
				tracker:    library.NewTracker(books),
				source:     src,
				maxResults: cfg.SuggestMaxResults,
				out:        cmd.OutOrStdout(),
			}
			return s.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

type shell struct {
	tracker     *library.Tracker
	source      suggest.Source
	maxResults  int
	suggestions []library.Book
	out         io.Writer
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(s.out, "Library catalog: %d books. Type 'help' for commands.\n", s.tracker.Len())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		select {
		case <-ctx.Done():
			return nil
		default:
		}

		command, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch strings.ToLower(command) {
		case "":
		case "list":
			s.printBooks(s.tracker.Available())
		case "all":
			s.printEntries(s.tracker.All())
		case "search":
			s.printEntries(s.tracker.Search(arg, false))
		case "borrow":
			s.report(s.tracker.Borrow(arg))
		case "return":
			s.report(s.tracker.Return(arg))
		case "loans":
			loans := s.tracker.Loans()
			if len(loans) == 0 {
				fmt.Fprintln(s.out, "No books on loan.")
			}
			for _, title := range loans {
				fmt.Fprintf(s.out, "  %s\n", title)
			}
		case "suggest":
			s.suggest(ctx, arg)
		case "accept":
			s.accept(arg)
		case "help":
			fmt.Fprintln(s.out, shellHelp)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", command)
		}
	}
}

func (s *shell) report(receipt library.Receipt, err error) {
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	slog.Debug("Loan state changed", "title", receipt.Title)
	fmt.Fprintln(s.out, receipt.Message)
}

func (s *shell) printBooks(books []library.Book) {
	if len(books) == 0 {
		fmt.Fprintln(s.out, "No books found.")
		return
	}
	for i, b := range books {
		fmt.Fprintf(s.out, "%3d. %s\n", i+1, b)
	}
}

func (s *shell) printEntries(entries []library.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No books found.")
		return
	}
	for i, e := range entries {
		status := ""
		if e.OnLoan {
			status = " [on loan]"
		}
		fmt.Fprintf(s.out, "%3d. %s%s\n", i+1, e.Book, status)
	}
}

func (s *shell) suggest(ctx context.Context, query string) {
	found, err := s.source.Suggest(ctx, query, s.maxResults)
	if err != nil {
		if errors.Is(err, suggest.ErrLookup) {
			slog.Warn("Suggestion lookup failed", "query", query, "err", err)
		}
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	s.suggestions = found
	if len(found) == 0 {
		fmt.Fprintln(s.out, "No suggestions.")
		return
	}
	s.printBooks(found)
	fmt.Fprintln(s.out, "Use 'accept <n>' to add one to the catalog.")
}

func (s *shell) accept(arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(s.suggestions) {
		fmt.Fprintf(s.out, "Error: no suggestion %q\n", arg)
		return
	}

	book, added, err := s.tracker.Add(s.suggestions[n-1])
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	case added:
		fmt.Fprintf(s.out, "'%s' has been added to the catalog.\n", book.Title)
	default:
		fmt.Fprintf(s.out, "'%s' is already in the catalog.\n", book.Title)
	}
}
