// Package importer feeds statement exports from a drop directory through the
// parsing and enrichment pipeline.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bankfeed-dev/bankfeed/internal/enrich"
	"github.com/bankfeed-dev/bankfeed/internal/id"
	"github.com/bankfeed-dev/bankfeed/internal/model"
	"github.com/bankfeed-dev/bankfeed/internal/parse"
)

// FileInfo describes a statement export in the drop directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// FileResult is the pipeline output for one file.
type FileResult struct {
	File    FileInfo
	Records []model.EnrichedRecord
	Refs    []string
}

// Batch groups the results of one import run.
type Batch struct {
	ID    uuid.UUID
	Files []FileResult
}

// statementExtensions are the delimited-text extensions we accept.
var statementExtensions = []string{".csv", ".txt", ".tsv"}

// Scan returns delimited-text exports in dir, skipping subdirectories.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statements dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !hasStatementExtension(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

func hasStatementExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range statementExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ProcessFile reads one export, strips any byte-order mark, and runs the
// pipeline plus enrichment. An export with no locatable header yields a
// result with zero records, not an error.
func ProcessFile(file FileInfo, engine *enrich.Engine) (FileResult, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return FileResult{}, fmt.Errorf("reading %s: %w", file.Name, err)
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")
	result := parse.Statement(text)
	records, _ := engine.Apply(result.Records)

	refs := make([]string, len(records))
	for i, rec := range records {
		refs[i] = id.FormatRecordRef(rec.Date, rec.Description, i+1)
	}
	return FileResult{File: file, Records: records, Refs: refs}, nil
}

// ProcessDir scans dir and runs every export through the pipeline, stamping
// the run with a batch ID.
func ProcessDir(dir string, engine *enrich.Engine) (*Batch, error) {
	files, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	batch := &Batch{ID: uuid.New()}
	for _, file := range files {
		res, err := ProcessFile(file, engine)
		if err != nil {
			return nil, err
		}
		batch.Files = append(batch.Files, res)
	}
	return batch, nil
}

// MarkProcessed moves a handled export from the drop dir to processedDir.
func MarkProcessed(dir, processedDir, fileName string) error {
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	src := filepath.Join(dir, fileName)
	dst := filepath.Join(processedDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
