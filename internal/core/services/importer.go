package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/rolohq/rolo-cli/internal/core/domain"
	"github.com/rolohq/rolo-cli/internal/core/ports/driving"
	csvimport "github.com/rolohq/rolo-cli/internal/importers/csv"
	"github.com/rolohq/rolo-cli/internal/logger"
)

// Ensure ImportService implements the interface.
var _ driving.ImportService = (*ImportService)(nil)

// settleDelay gives writers time to finish a file before it is imported.
// fsnotify reports writes per chunk, so reading on the first event would
// truncate large files.
const settleDelay = 200 * time.Millisecond

// ImportService imports contacts from CSV files. Decoding goes through the
// domain's smart constructors; rejected rows are carried in the report.
type ImportService struct {
	contacts driving.ContactService

	// RemoveAfterImport deletes each watched file once imported.
	RemoveAfterImport bool
}

// NewImportService creates a new import service.
func NewImportService(contacts driving.ContactService) *ImportService {
	return &ImportService{contacts: contacts}
}

// ImportFile imports contacts from a CSV file on disk.
func (s *ImportService) ImportFile(ctx context.Context, path string) (*domain.ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()
	return s.ImportReader(ctx, path, f)
}

// ImportReader imports contacts from CSV content.
func (s *ImportService) ImportReader(ctx context.Context, name string, r io.Reader) (*domain.ImportReport, error) {
	if s.contacts == nil {
		return nil, domain.ErrNotImplemented
	}

	decoded, err := csvimport.Decode(r)
	if err != nil {
		return nil, err
	}

	report := &domain.ImportReport{
		Source:   name,
		Failures: decoded.Failures,
	}
	for _, contact := range decoded.Contacts {
		stored, err := s.contacts.Add(ctx, contact)
		if err != nil {
			return report, fmt.Errorf("storing imported contact %q: %w", contact.Name.Full(), err)
		}
		report.Imported = append(report.Imported, stored.ID)
	}
	logger.Info("imported %d contacts from %s (%d rows rejected)",
		len(report.Imported), name, len(report.Failures))
	return report, nil
}

// Watch imports .csv files dropped into dir until ctx is cancelled. Files
// already present when the watch starts are imported first. Each completed
// import is passed to onReport.
func (s *ImportService) Watch(ctx context.Context, dir string, onReport func(*domain.ImportReport)) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating inbox directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Info("watching %s for contact imports", dir)

	// Imported files are remembered so a Create followed by Write events
	// does not import the same file twice.
	var mu sync.Mutex
	done := make(map[string]bool)

	importOne := func(path string) {
		mu.Lock()
		if done[path] {
			mu.Unlock()
			return
		}
		done[path] = true
		mu.Unlock()

		time.Sleep(settleDelay)
		report, err := s.ImportFile(ctx, path)
		if err != nil {
			logger.Warn("import of %s failed: %v", path, err)
			mu.Lock()
			delete(done, path)
			mu.Unlock()
			return
		}
		if s.RemoveAfterImport {
			if err := os.Remove(path); err != nil {
				logger.Warn("removing imported file %s: %v", path, err)
			}
		}
		if onReport != nil {
			onReport(report)
		}
	}

	// Drain files already in the inbox.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading inbox directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && isCSV(entry.Name()) {
			importOne(filepath.Join(dir, entry.Name()))
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if isCSV(event.Name) {
				importOne(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// isCSV reports whether the path names a CSV file.
func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
