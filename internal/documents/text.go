package documents

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/sync/errgroup"
)

const sourcePDF = "source.pdf"

// Text extracts the plain text of an inclusive 1-based page range from a
// registered PDF document. The blob is staged to a temp directory, pages
// are extracted concurrently via pdfcpu, and page texts are joined with
// newlines in page order.
func (r *repo) Text(ctx context.Context, id uuid.UUID, startPage, endPage int) (string, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return "", err
	}

	if err := validatePageRange(doc, startPage, endPage); err != nil {
		return "", err
	}

	tempDir, err := os.MkdirTemp("", "mandate-text-*")
	if err != nil {
		return "", fmt.Errorf("create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	pdfPath, err := r.stageBlob(ctx, doc.StorageKey, tempDir)
	if err != nil {
		return "", err
	}

	pageCount := endPage - startPage + 1
	pages := make([]string, pageCount)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(textWorkerCount(pageCount))

	for i := range pageCount {
		pageNum := startPage + i

		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			text, err := extractPageText(pdfPath, tempDir, pageNum)
			if err != nil {
				return fmt.Errorf("extract page %d: %w", pageNum, err)
			}

			pages[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	r.logger.Info(
		"document text extracted",
		"id", id,
		"start_page", startPage,
		"end_page", endPage,
	)

	return strings.Join(pages, "\n"), nil
}

func (r *repo) stageBlob(ctx context.Context, key, tempDir string) (string, error) {
	blob, err := r.storage.Download(ctx, key)
	if err != nil {
		return "", fmt.Errorf("download blob %s: %w", key, err)
	}
	defer blob.Close()

	pdfPath := filepath.Join(tempDir, sourcePDF)
	pdfFile, err := os.Create(pdfPath)
	if err != nil {
		return "", fmt.Errorf("create temp pdf: %w", err)
	}

	if _, err := io.Copy(pdfFile, blob); err != nil {
		pdfFile.Close()
		return "", fmt.Errorf("write temp pdf: %w", err)
	}
	pdfFile.Close()

	return pdfPath, nil
}

// extractPageText renders one page's content into its own output
// directory and concatenates whatever pdfcpu produced there. Per-page
// directories avoid depending on pdfcpu's output naming scheme.
func extractPageText(pdfPath, tempDir string, pageNum int) (string, error) {
	outDir := filepath.Join(tempDir, fmt.Sprintf("page-%d", pageNum))
	if err := os.MkdirAll(outDir, 0700); err != nil {
		return "", fmt.Errorf("create page directory: %w", err)
	}

	if err := api.ExtractContentFile(pdfPath, outDir, []string{strconv.Itoa(pageNum)}, nil); err != nil {
		return "", fmt.Errorf("extract content: %w", err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", fmt.Errorf("read page directory: %w", err)
	}

	slices.SortFunc(entries, func(a, b os.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})

	var sb strings.Builder
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(outDir, entry.Name()))
		if err != nil {
			return "", fmt.Errorf("read page content: %w", err)
		}

		sb.Write(data)
	}

	return sb.String(), nil
}

func validatePageRange(doc *Document, startPage, endPage int) error {
	if startPage < 1 || endPage < startPage {
		return fmt.Errorf("%w: %d-%d", ErrInvalidPageRange, startPage, endPage)
	}
	if doc.PageCount != nil && endPage > *doc.PageCount {
		return fmt.Errorf(
			"%w: %d-%d exceeds %d pages",
			ErrInvalidPageRange, startPage, endPage, *doc.PageCount,
		)
	}
	return nil
}

func textWorkerCount(pageCount int) int {
	return max(min(runtime.NumCPU(), pageCount), 1)
}
