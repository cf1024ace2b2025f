package seed

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/circulation/internal/library"
	"github.com/parquet-go/parquet-go"
	"gopkg.in/yaml.v3"
)

// Loader reads a seed catalog from a file. The format is picked from the
// file extension.
type Loader struct {
	path string
}

// NewLoader creates a loader for path.
func NewLoader(path string) *Loader {
	return &Loader{
		path: path,
	}
}

// document is the YAML layout: a top-level "books" list.
type document struct {
	Books []Record `yaml:"books"`
}

// Load reads every record in the file.
func (l *Loader) Load() ([]library.Book, error) {
	return l.LoadSample(-1)
}

// LoadSample reads at most limit records. A negative limit reads them all.
func (l *Loader) LoadSample(limit int) ([]library.Book, error) {
	var (
		records []Record
		err     error
	)

	ext := strings.ToLower(filepath.Ext(l.path))
	switch ext {
	case ".yaml", ".yml":
		records, err = l.loadYAML()
	case ".jsonl", ".json":
		records, err = l.loadJSONL()
	case ".parquet":
		records, err = l.loadParquet()
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .yaml, .jsonl, .parquet)", ext)
	}
	if err != nil {
		return nil, err
	}

	books := make([]library.Book, 0, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.Title) == "" {
			slog.Warn("Skipping seed record without title", "path", l.path, "record", i+1)
			continue
		}
		books = append(books, r.Book())
		if limit >= 0 && len(books) == limit {
			break
		}
	}

	slog.Debug("Loaded seed catalog", "path", l.path, "books", len(books))
	return books, nil
}

func (l *Loader) loadYAML() ([]Record, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML seed: %w", err)
	}
	return doc.Books, nil
}

func (l *Loader) loadJSONL() ([]Record, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		// year shows up both as a number and as a date string
		var raw struct {
			Title  string `json:"title"`
			Author string `json:"author"`
			Year   any    `json:"year"`
		}
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
		}

		records = append(records, Record{
			Title:  raw.Title,
			Author: raw.Author,
			Year:   yearString(raw.Year),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	return records, nil
}

func (l *Loader) loadParquet() ([]Record, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet seed opened", "path", l.path, "num_rows", pf.NumRows())

	reader := parquet.NewGenericReader[Record](pf)
	defer reader.Close()

	var records []Record
	rows := make([]Record, 128)
	for {
		n, err := reader.Read(rows)
		records = append(records, rows[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	return records, nil
}

func yearString(v any) string {
	switch year := v.(type) {
	case float64:
		return strconv.Itoa(int(year))
	case string:
		return year
	default:
		return ""
	}
}

// WriteYAML writes books in the layout Load reads back.
func WriteYAML(w io.Writer, books []library.Book) error {
	doc := struct {
		Books []library.Book `yaml:"books"`
	}{Books: books}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
