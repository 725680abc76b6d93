package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolohq/rolo-cli/internal/core/domain"
)

// TestImportService_ImportReader tests a mixed good/bad import
func TestImportService_ImportReader(t *testing.T) {
	contacts := newTestService()
	svc := NewImportService(contacts)
	ctx := context.Background()

	input := "first,last,email\n" +
		"Alice,Smith,alice@example.com\n" +
		"Bob,Jones,not-an-email\n" +
		"Carol,White,carol@example.com\n"

	report, err := svc.ImportReader(ctx, "test.csv", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, "test.csv", report.Source)
	assert.Len(t, report.Imported, 2)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, 3, report.Failures[0].Row)
	assert.False(t, report.Ok())

	stored, err := contacts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

// TestImportService_ImportReader_BadHeader tests stream-level failure
func TestImportService_ImportReader_BadHeader(t *testing.T) {
	svc := NewImportService(newTestService())
	_, err := svc.ImportReader(context.Background(), "bad.csv", strings.NewReader("email\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// TestImportService_ImportFile tests reading from disk
func TestImportService_ImportFile(t *testing.T) {
	contacts := newTestService()
	svc := NewImportService(contacts)

	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.csv")
	content := "first,last,email\nAlice,Smith,alice@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	report, err := svc.ImportFile(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, report.Imported, 1)
	assert.True(t, report.Ok())
}

// TestImportService_ImportFile_Missing tests the missing-file path
func TestImportService_ImportFile_Missing(t *testing.T) {
	svc := NewImportService(newTestService())
	_, err := svc.ImportFile(context.Background(), "/nonexistent/contacts.csv")
	require.Error(t, err)
}

// TestImportService_Watch_DrainsExistingFiles tests that files already in
// the inbox are imported when the watch starts
func TestImportService_Watch_DrainsExistingFiles(t *testing.T) {
	contacts := newTestService()
	svc := NewImportService(contacts)
	svc.RemoveAfterImport = true

	dir := t.TempDir()
	path := filepath.Join(dir, "inbox.csv")
	content := "first,last,email\nAlice,Smith,alice@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan *domain.ImportReport, 1)
	done := make(chan error, 1)
	go func() {
		done <- svc.Watch(ctx, dir, func(r *domain.ImportReport) {
			reports <- r
		})
	}()

	select {
	case report := <-reports:
		assert.Len(t, report.Imported, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for import report")
	}

	// RemoveAfterImport deletes the file once imported.
	assert.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return os.IsNotExist(err)
	}, 2*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for watch to stop")
	}
}

// TestImportService_Watch_PicksUpNewFiles tests fsnotify-driven import
func TestImportService_Watch_PicksUpNewFiles(t *testing.T) {
	contacts := newTestService()
	svc := NewImportService(contacts)

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := make(chan *domain.ImportReport, 1)
	go func() {
		_ = svc.Watch(ctx, dir, func(r *domain.ImportReport) {
			reports <- r
		})
	}()

	// Give the watcher time to register before dropping the file.
	time.Sleep(100 * time.Millisecond)
	content := "first,last,email\nBob,Jones,bob@example.com\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "drop.csv"), []byte(content), 0600))

	select {
	case report := <-reports:
		assert.Len(t, report.Imported, 1)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for import report")
	}

	// Non-CSV files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0600))
	select {
	case <-reports:
		t.Fatal("unexpected report for non-CSV file")
	case <-time.After(400 * time.Millisecond):
	}
}
