package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankfeed-dev/bankfeed/internal/enrich"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan_FindsDelimitedExports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bank.csv"), "data")
	writeFile(t, filepath.Join(dir, "export.TXT"), "data")
	writeFile(t, filepath.Join(dir, "tabbed.tsv"), "data")
	writeFile(t, filepath.Join(dir, "statement.pdf"), "data")

	files, err := Scan(dir)
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestScan_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0o755))
	writeFile(t, filepath.Join(dir, "new.csv"), "data")
	writeFile(t, filepath.Join(dir, "processed", "old.csv"), "data")

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestProcessFile_ParsesAndEnriches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.csv")
	writeFile(t, path,
		"Date,Description,Amount\n"+
			"01/17/2025,LIDL SAGT DANKE,-52.17\n"+
			"01/15/2025,PAYROLL DEPOSIT,3500.00\n")

	res, err := ProcessFile(FileInfo{Name: "bank.csv", Path: path}, enrich.NewEngine())
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	require.Len(t, res.Refs, 2)

	assert.Equal(t, "Lidl", res.Records[0].Merchant)
	assert.Equal(t, "Groceries", res.Records[0].Category)
	assert.Equal(t, "Income", res.Records[1].Category)
	assert.Equal(t, "feed_20250117_LIDLSAGTDA_001", res.Refs[0])
}

func TestProcessFile_StripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.csv")
	writeFile(t, path, "\uFEFFDate,Description,Amount\n01/17/2025,LIDL,-1.00\n")

	res, err := ProcessFile(FileInfo{Name: "bom.csv", Path: path}, enrich.NewEngine())
	require.NoError(t, err)
	assert.Len(t, res.Records, 1)
}

func TestProcessFile_NoHeaderYieldsNoRecords(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.csv")
	writeFile(t, path, "this,is,junk\n1,2,3\n")

	res, err := ProcessFile(FileInfo{Name: "junk.csv", Path: path}, enrich.NewEngine())
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestProcessDir_BatchID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "Date,Description,Amount\n01/17/2025,LIDL,-1.00\n")
	writeFile(t, filepath.Join(dir, "b.csv"), "Date,Description,Amount\n01/18/2025,REWE,-2.00\n")

	batch, err := ProcessDir(dir, enrich.NewEngine())
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", batch.ID.String())
	assert.Len(t, batch.Files, 2)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	processed := filepath.Join(dir, "processed")
	writeFile(t, filepath.Join(dir, "bank.csv"), "data")

	require.NoError(t, MarkProcessed(dir, processed, "bank.csv"))

	_, err := os.Stat(filepath.Join(dir, "bank.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(processed, "bank.csv"))
	assert.NoError(t, err)
}
