package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"circulation/internal/apperr"
	"circulation/internal/catalog"
	"circulation/internal/platform/openlibrary"
	"circulation/internal/platform/postgres"
)

type Service struct {
	source    Source
	repo      Repository
	tx        postgres.Transactor
	batchSize int
	logger    *slog.Logger
}

func NewService(source Source, repo Repository, tx postgres.Transactor, batchSize int, logger *slog.Logger) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Service{source: source, repo: repo, tx: tx, batchSize: batchSize, logger: logger}
}

// Import adds the books behind isbns to the catalog. Books already present are
// left untouched and ISBNs the source does not know are reported as missing.
// Each book is written in its own transaction.
func (s *Service) Import(ctx context.Context, isbns []string) (Report, error) {
	wanted, err := normalizeAll(isbns)
	if err != nil {
		return Report{}, err
	}

	existing, err := s.repo.ExistingISBNs(ctx, wanted)
	if err != nil {
		return Report{}, err
	}

	report := Report{Imported: []string{}, Existing: []string{}, Missing: []string{}}
	var pending []string
	for _, isbn := range wanted {
		if existing[isbn] {
			report.Existing = append(report.Existing, isbn)
			continue
		}
		pending = append(pending, isbn)
	}

	for start := 0; start < len(pending); start += s.batchSize {
		batch := pending[start:min(start+s.batchSize, len(pending))]
		found, err := s.source.BooksByISBN(ctx, batch)
		if err != nil {
			return report, fmt.Errorf("fetch %d books: %w", len(batch), err)
		}

		for _, isbn := range batch {
			details, ok := found[isbn]
			if !ok || strings.TrimSpace(details.Title) == "" {
				report.Missing = append(report.Missing, isbn)
				continue
			}
			rec := toRecord(isbn, details)
			if err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
				return s.repo.InsertBook(ctx, rec)
			}); err != nil {
				return report, err
			}
			report.Imported = append(report.Imported, isbn)
		}
	}

	s.logger.InfoContext(ctx, "catalog import finished",
		"imported", len(report.Imported),
		"existing", len(report.Existing),
		"missing", len(report.Missing),
	)
	return report, nil
}

func normalizeAll(isbns []string) ([]string, error) {
	if len(isbns) == 0 {
		return nil, apperr.InvalidArgument("at least one ISBN is required")
	}
	if len(isbns) > MaxImport {
		return nil, apperr.InvalidArgument("at most %d ISBNs per import, got %d", MaxImport, len(isbns))
	}

	seen := make(map[string]bool, len(isbns))
	out := make([]string, 0, len(isbns))
	for _, raw := range isbns {
		isbn := catalog.NormalizeISBN(raw)
		if !validISBN(isbn) {
			return nil, apperr.InvalidArgument("invalid ISBN %q", raw)
		}
		if seen[isbn] {
			continue
		}
		seen[isbn] = true
		out = append(out, isbn)
	}
	return out, nil
}

func validISBN(isbn string) bool {
	switch len(isbn) {
	case 10:
		for i, r := range isbn {
			if (r < '0' || r > '9') && !(r == 'X' && i == 9) {
				return false
			}
		}
		return true
	case 13:
		for _, r := range isbn {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}

func toRecord(isbn string, d openlibrary.BookDetails) Record {
	title := strings.TrimSpace(d.Title)
	if sub := strings.TrimSpace(d.Subtitle); sub != "" {
		title += ": " + sub
	}

	rec := Record{ISBN: isbn, Title: title}
	seen := make(map[string]bool, len(d.Authors))
	for _, a := range d.Authors {
		name := strings.TrimSpace(a.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		rec.Authors = append(rec.Authors, name)
	}
	return rec
}
