// Package seed provides the catalog a new session starts from.
package seed

import "github.com/lehigh-university-libraries/circulation/internal/library"

// Record is a seed catalog row as stored in YAML, JSONL or Parquet files.
// Year is a string in files that carry publication dates ("1925-04-10");
// it is read through library.ParseYear.
type Record struct {
	Title  string `json:"title" yaml:"title" parquet:"title"`
	Author string `json:"author" yaml:"author" parquet:"author"`
	Year   string `json:"year" yaml:"year" parquet:"year,optional"`
}

// Book converts the record into a catalog book.
func (r Record) Book() library.Book {
	return library.Book{
		Title:  r.Title,
		Author: r.Author,
		Year:   library.ParseYear(r.Year),
	}
}

// Default is the catalog used when no seed file is configured.
func Default() []library.Book {
	return []library.Book{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: 1925},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Year: 1960},
		{Title: "1984", Author: "George Orwell", Year: 1949},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Year: 1813},
		{Title: "The Catcher in the Rye", Author: "J.D. Salinger", Year: 1951},
		{Title: "Moby-Dick", Author: "Herman Melville", Year: 1851},
		{Title: "Design Patterns", Author: "Erich Gamma et al.", Year: 1994},
		{Title: "Clean Code", Author: "Robert C. Martin", Year: 2008},
		{Title: "Deep Work", Author: "Cal Newport", Year: 2016},
	}
}

// Books loads the catalog from path, or returns Default when path is empty.
func Books(path string) ([]library.Book, error) {
	if path == "" {
		return Default(), nil
	}
	return NewLoader(path).Load()
}
