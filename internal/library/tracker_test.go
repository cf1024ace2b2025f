package library

import (
	"errors"
	"reflect"
	"testing"
)

func testBooks() []Book {
	return []Book{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: 1925},
		{Title: "1984", Author: "George Orwell", Year: 1949},
		{Title: "Moby-Dick", Author: "Herman Melville", Year: 1851},
		{Title: "Clean Code", Author: "Robert C. Martin", Year: 2008},
		{Title: "Deep Work", Author: "Cal Newport", Year: 2016},
	}
}

func titles(books []Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestBorrowReturnExample(t *testing.T) {
	tr := NewTracker([]Book{{Title: "1984", Author: "George Orwell", Year: 1949}})

	if _, err := tr.Borrow("1984"); err != nil {
		t.Fatalf("first borrow failed: %v", err)
	}
	if got := tr.Loans(); !reflect.DeepEqual(got, []string{"1984"}) {
		t.Fatalf("loans after borrow = %v", got)
	}

	if _, err := tr.Borrow("1984"); !errors.Is(err, ErrAlreadyLoaned) {
		t.Fatalf("second borrow: expected ErrAlreadyLoaned, got %v", err)
	}
	if got := tr.Loans(); len(got) != 1 {
		t.Fatalf("expected exactly one loan, got %v", got)
	}

	if _, err := tr.Return("1984"); err != nil {
		t.Fatalf("return failed: %v", err)
	}
	if got := tr.Loans(); len(got) != 0 {
		t.Fatalf("loans after return = %v", got)
	}

	if _, err := tr.Return("1984"); !errors.Is(err, ErrNotLoaned) {
		t.Fatalf("second return: expected ErrNotLoaned, got %v", err)
	}
}

func TestBorrow(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
		wantErr   error
	}{
		{name: "exact title", input: "1984", wantTitle: "1984"},
		{name: "lower case resolves to canonical title", input: "the great gatsby", wantTitle: "The Great Gatsby"},
		{name: "surrounding whitespace ignored", input: "  Deep Work \t", wantTitle: "Deep Work"},
		{name: "blank", input: "   ", wantErr: ErrInvalidInput},
		{name: "empty", input: "", wantErr: ErrInvalidInput},
		{name: "unknown title", input: "Dune", wantErr: ErrNotFound},
		{name: "partial title is not a match", input: "Great Gatsby", wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(testBooks())
			receipt, err := tr.Borrow(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(tr.Loans()) != 0 {
					t.Errorf("failed borrow changed loans: %v", tr.Loans())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if receipt.Title != tt.wantTitle {
				t.Errorf("receipt title = %q, want %q", receipt.Title, tt.wantTitle)
			}
			want := "'" + tt.wantTitle + "' has been borrowed successfully."
			if receipt.Message != want {
				t.Errorf("receipt message = %q, want %q", receipt.Message, want)
			}
			if got := tr.Loans(); !reflect.DeepEqual(got, []string{tt.wantTitle}) {
				t.Errorf("loans = %v, want [%s]", got, tt.wantTitle)
			}
		})
	}
}

func TestBorrowNotFoundNamesRequest(t *testing.T) {
	tr := NewTracker(testBooks())
	_, err := tr.Borrow("War and Peace")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != `"War and Peace": book does not exist in the library` {
		t.Errorf("unexpected message %q", got)
	}
}

func TestBorrowRemovesFromAvailable(t *testing.T) {
	for _, b := range testBooks() {
		t.Run(b.Title, func(t *testing.T) {
			tr := NewTracker(testBooks())
			if _, err := tr.Borrow(b.Title); err != nil {
				t.Fatalf("borrow failed: %v", err)
			}
			for _, available := range tr.Available() {
				if available.Title == b.Title {
					t.Fatalf("%q still listed as available", b.Title)
				}
			}
			if len(tr.Available()) != len(testBooks())-1 {
				t.Errorf("expected %d available, got %d", len(testBooks())-1, len(tr.Available()))
			}
		})
	}
}

func TestBorrowReturnRoundTrip(t *testing.T) {
	for _, b := range testBooks() {
		t.Run(b.Title, func(t *testing.T) {
			tr := NewTracker(testBooks())
			before := titles(tr.Available())

			if _, err := tr.Borrow(b.Title); err != nil {
				t.Fatalf("borrow failed: %v", err)
			}
			if _, err := tr.Return(b.Title); err != nil {
				t.Fatalf("return failed: %v", err)
			}

			if after := titles(tr.Available()); !reflect.DeepEqual(before, after) {
				t.Errorf("available changed:\nbefore %v\nafter  %v", before, after)
			}
		})
	}
}

func TestReturn(t *testing.T) {
	tests := []struct {
		name      string
		borrowed  []string
		input     string
		wantTitle string
		wantErr   error
		wantLoans []string
	}{
		{
			name:      "case-insensitive return",
			borrowed:  []string{"The Great Gatsby"},
			input:     "THE GREAT GATSBY",
			wantTitle: "The Great Gatsby",
			wantLoans: []string{},
		},
		{
			name:      "other loans kept in order",
			borrowed:  []string{"1984", "Clean Code", "Deep Work"},
			input:     "clean code",
			wantTitle: "Clean Code",
			wantLoans: []string{"1984", "Deep Work"},
		},
		{
			name:      "not on loan",
			borrowed:  []string{"1984"},
			input:     "Deep Work",
			wantErr:   ErrNotLoaned,
			wantLoans: []string{"1984"},
		},
		{
			name:      "not in catalog",
			input:     "Dune",
			wantErr:   ErrNotLoaned,
			wantLoans: []string{},
		},
		{
			name:      "blank",
			borrowed:  []string{"1984"},
			input:     " ",
			wantErr:   ErrInvalidInput,
			wantLoans: []string{"1984"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(testBooks())
			for _, title := range tt.borrowed {
				if _, err := tr.Borrow(title); err != nil {
					t.Fatalf("setup borrow %q: %v", title, err)
				}
			}

			receipt, err := tr.Return(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if receipt.Title != tt.wantTitle {
					t.Errorf("receipt title = %q, want %q", receipt.Title, tt.wantTitle)
				}
			}

			if got := tr.Loans(); !reflect.DeepEqual(got, tt.wantLoans) {
				t.Errorf("loans = %v, want %v", got, tt.wantLoans)
			}
		})
	}
}

func TestAdd(t *testing.T) {
	tr := NewTracker(testBooks())

	stored, added, err := tr.Add(Book{Title: "  Dune ", Author: "Frank Herbert", Year: 1965})
	if err != nil || !added {
		t.Fatalf("expected Dune to be added, got added=%v err=%v", added, err)
	}
	if want := (Book{Title: "Dune", Author: "Frank Herbert", Year: 1965}); stored != want {
		t.Errorf("stored = %+v, want %+v", stored, want)
	}
	all := tr.All()
	if last := all[len(all)-1]; last.Title != "Dune" || last.Author != "Frank Herbert" {
		t.Errorf("expected trimmed Dune appended last, got %+v", last)
	}

	stored, added, err = tr.Add(Book{Title: "DUNE", Author: "Someone Else"})
	if err != nil || added {
		t.Fatalf("expected duplicate to be a no-op, got added=%v err=%v", added, err)
	}
	if stored.Title != "Dune" || stored.Author != "Frank Herbert" {
		t.Errorf("duplicate add should return the catalog entry, got %+v", stored)
	}

	stored, _, _ = tr.Add(Book{Title: "Far Future", Year: 123456})
	if stored.Year != 0 {
		t.Errorf("out of range year should be stored as 0, got %d", stored.Year)
	}
	if tr.Len() != len(testBooks())+2 {
		t.Errorf("catalog size = %d, want %d", tr.Len(), len(testBooks())+2)
	}

	if _, _, err := tr.Add(Book{Title: " ", Author: "Nobody"}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for blank title, got %v", err)
	}

	if _, err := tr.Borrow("dune"); err != nil {
		t.Errorf("added book should be borrowable: %v", err)
	}
}

func TestNewTrackerDedupesSeed(t *testing.T) {
	tr := NewTracker([]Book{
		{Title: "1984", Author: "George Orwell"},
		{Title: "1984 ", Author: "Duplicate"},
		{Title: "Straße", Author: "A"},
		{Title: "STRASSE", Author: "B"},
	})

	want := []Book{
		{Title: "1984", Author: "George Orwell"},
		{Title: "Straße", Author: "A"},
	}
	if got := tr.Available(); !reflect.DeepEqual(got, want) {
		t.Errorf("available = %v, want %v", got, want)
	}
}

func TestAllFlagsLoans(t *testing.T) {
	tr := NewTracker(testBooks())
	if _, err := tr.Borrow("moby-dick"); err != nil {
		t.Fatal(err)
	}

	for _, e := range tr.All() {
		if want := e.Title == "Moby-Dick"; e.OnLoan != want {
			t.Errorf("%q on loan = %v, want %v", e.Title, e.OnLoan, want)
		}
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1925", 1925},
		{"1925-04-10", 1925},
		{" 2008-08 ", 2008},
		{"c1925", 0},
		{"192", 0},
		{"", 0},
		{"+192", 0},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseYear(tt.in); got != tt.want {
				t.Errorf("ParseYear(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestYearFromNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{1925, 1925},
		{0, 0},
		{1925.5, 0},
		{-44, 0},
		{10000, 0},
		{1e30, 0},
	}

	for _, tt := range tests {
		if got := YearFromNumber(tt.in); got != tt.want {
			t.Errorf("YearFromNumber(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
