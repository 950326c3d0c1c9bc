package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/wikiknow"
	"github.com/fwojciec/wikiknow/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Reading Record Files
// The source lists record files in name order and parses their headers

const sampleRecord = "标题：快速排序\n" +
	"分类：排序算法\t比较排序\n" +
	"链接地址：https://zh.wikipedia.org/wiki/快速排序\n" +
	"抓取时间：2024-05-01T12:00:00Z\n" +
	"\n" +
	"<div class=\"mw-parser-output\">\n<p>快速排序</p>\n</div>"

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestSource_ListReturnsSortedRecordFiles(t *testing.T) {
	t.Parallel()

	// Given a directory with record files, other files and a subdirectory
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", sampleRecord)
	writeFile(t, dir, "a.txt", sampleRecord)
	writeFile(t, dir, "notes.md", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "c.txt"), 0755))

	// When I list the source
	names, err := fs.NewSource(dir).List(context.Background())

	// Then only record files are returned in name order
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestSource_ListEmptyDirectory(t *testing.T) {
	t.Parallel()

	names, err := fs.NewSource(t.TempDir()).List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestSource_ListRejectsMissingDirectory(t *testing.T) {
	t.Parallel()

	// Given a path that does not exist
	dir := filepath.Join(t.TempDir(), "missing")

	// When I list the source
	_, err := fs.NewSource(dir).List(context.Background())

	// Then a configuration error is returned
	require.Error(t, err)
	assert.Equal(t, wikiknow.EINVALID, wikiknow.ErrorCode(err))
}

func TestSource_ListRejectsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", sampleRecord)

	_, err := fs.NewSource(filepath.Join(dir, "a.txt")).List(context.Background())

	require.Error(t, err)
	assert.Equal(t, wikiknow.EINVALID, wikiknow.ErrorCode(err))
}

func TestSource_ReadParsesRecord(t *testing.T) {
	t.Parallel()

	// Given a well-formed record file
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", sampleRecord)

	// When I read it
	rec, err := fs.NewSource(dir).Read(context.Background(), "a.txt")

	// Then the header fields and flattened body are returned
	require.NoError(t, err)
	assert.Equal(t, "快速排序", rec.Title)
	assert.Equal(t, []string{"排序算法", "比较排序"}, rec.Categories)
	assert.Equal(t, "https://zh.wikipedia.org/wiki/快速排序", rec.URL)
	assert.Equal(t, "2024-05-01T12:00:00Z", rec.Timestamp)
	assert.Equal(t, `<div class="mw-parser-output"> <p>快速排序</p> </div>`, rec.Body)
}

func TestSource_ReadRejectsMalformedRecord(t *testing.T) {
	t.Parallel()

	// Given a record file with too few header lines
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", "标题：x\n")

	// When I read it
	_, err := fs.NewSource(dir).Read(context.Background(), "bad.txt")

	// Then a format error naming the file is returned
	require.Error(t, err)
	assert.Equal(t, wikiknow.EFORMAT, wikiknow.ErrorCode(err))
	assert.Contains(t, wikiknow.ErrorMessage(err), "bad.txt")
}

func TestSource_ReadRejectsPathTraversal(t *testing.T) {
	t.Parallel()

	_, err := fs.NewSource(t.TempDir()).Read(context.Background(), "../a.txt")

	require.Error(t, err)
	assert.Equal(t, wikiknow.EINVALID, wikiknow.ErrorCode(err))
}

func TestSource_ReadHonorsCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", sampleRecord)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewSource(dir).Read(ctx, "a.txt")

	assert.ErrorIs(t, err, context.Canceled)
}
