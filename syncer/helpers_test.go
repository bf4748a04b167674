package syncer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lazycloud-app/go-doodsync/common/syncerr"
	"github.com/lazycloud-app/go-doodsync/db"
	"github.com/lazycloud-app/go-doodsync/events"
	"github.com/lazycloud-app/go-doodsync/md"
	"github.com/stretchr/testify/require"
)

//recorder is a synchronous EventProcessor
type recorder struct {
	events []events.Event
}

func (r *recorder) Send(l events.Level, s string, d interface{}) {
	r.events = append(r.events, events.Event{Level: l, Source: s, Data: d})
}

func (r *recorder) SendVerbose(l events.Level, s string, d interface{}) {
	r.events = append(r.events, events.Event{Level: l, Source: s, Data: d, Verbose: true})
}

func (r *recorder) Close() {}

//atLeast returns events of level l and above
func (r *recorder) atLeast(l events.Level) (res []events.Event) {
	for _, e := range r.events {
		if e.Level >= l {
			res = append(res, e)
		}
	}
	return
}

//fakeAPI serves folders & files from memory
type fakeAPI struct {
	folders    []md.Folder
	foldersErr error
	files      map[string][]md.File
	filesErr   map[string]error
	onListFile func(fldID string)
	fileCalls  []string
}

func (f *fakeAPI) ListFolders(ctx context.Context) ([]md.Folder, error) {
	if f.foldersErr != nil {
		return nil, f.foldersErr
	}
	return f.folders, nil
}

func (f *fakeAPI) ListFiles(ctx context.Context, fldID string) ([]md.File, error) {
	f.fileCalls = append(f.fileCalls, fldID)
	if f.onListFile != nil {
		f.onListFile(fldID)
	}
	if err := f.filesErr[fldID]; err != nil {
		return nil, err
	}
	return f.files[fldID], nil
}

//flakyDB fails on chosen keys
type flakyDB struct {
	*db.GORM
	initErr     error
	failFolders map[string]bool
	failFiles   map[string]bool
}

func (f *flakyDB) Init() error {
	if f.initErr != nil {
		return f.initErr
	}
	return f.GORM.Init()
}

func (f *flakyDB) SaveFolder(r md.Folder) (bool, error) {
	if f.failFolders[r.FldID] {
		return false, syncerr.Storage("[SaveFolder] folder "+r.FldID, errors.New("disk I/O error"))
	}
	return f.GORM.SaveFolder(r)
}

func (f *flakyDB) SaveFile(r md.File) (bool, error) {
	if f.failFiles[r.FileCode] {
		return false, syncerr.Storage("[SaveFile] file "+r.FileCode, errors.New("disk I/O error"))
	}
	return f.GORM.SaveFile(r)
}

func newTestDB(t *testing.T) *db.GORM {
	t.Helper()
	g, err := db.NewGormSQLite(filepath.Join(t.TempDir(), "dood.db"))
	require.NoError(t, err)
	t.Cleanup(func() { g.Close() })
	return g
}

func folder(id, name string) md.Folder {
	return md.Folder{FldID: id, Name: name, ParentID: md.RootFolderID}
}

func file(code, fldID string) md.File {
	return md.File{FileCode: code, Title: code, DownloadURL: "https://dood/d/" + code, SingleImg: "https://img/" + code, Length: 100, Views: 5, Uploaded: "2024-01-01", FldID: fldID, Name: code}
}

func fileCodes(t *testing.T, g *db.GORM, fldID string) (codes []string) {
	t.Helper()
	files, err := g.FilesInFolder(fldID)
	require.NoError(t, err)
	for _, f := range files {
		codes = append(codes, f.FileCode)
	}
	return
}
