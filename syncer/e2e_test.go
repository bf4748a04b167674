package syncer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lazycloud-app/go-doodsync/common/syncerr"
	"github.com/lazycloud-app/go-doodsync/dood"
	"github.com/lazycloud-app/go-doodsync/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//mockAPI answers like remote API: folder list body and file list bodies by fld_id
func mockAPI(t *testing.T, folders string, files map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			w.Write([]byte(`{"msg":"Wrong Auth","status":403}`))
			return
		}
		switch r.URL.Path {
		case "/api/folder/list":
			w.Write([]byte(folders))
		case "/api/file/list":
			body, ok := files[r.URL.Query().Get("fld_id")]
			if !ok {
				w.Write([]byte(`{"msg":"Not found","status":404}`))
				return
			}
			w.Write([]byte(body))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestMoviesScenario(t *testing.T) {
	srv := mockAPI(t,
		`{"msg":"OK","result":{"folders":[{"fld_id":"1","name":"Movies"}]}}`,
		map[string]string{"1": `{"msg":"OK","result":{"files":[
			{"file_code":"abc","title":"A","download_url":"u1","single_img":"i1","length":100,"views":5,"uploaded":"2024-01-01","fld_id":"1","name":"A"},
			{"file_code":"def","title":"D","download_url":"u2","single_img":"i2","length":200,"views":0,"uploaded":"2024-01-02","fld_id":"1","name":"D"}
		]}}`},
	)
	g := newTestDB(t)

	_, err := New(dood.New(srv.URL+"/api", "test-key"), g, &recorder{}).Run(context.Background())
	require.NoError(t, err)

	folders, err := g.Folders()
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "1", folders[0].FldID)
	assert.Equal(t, "Movies", folders[0].Name)
	assert.Equal(t, "0", folders[0].ParentID)

	files, err := g.FilesInFolder("1")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "abc", files[0].FileCode)
	assert.Equal(t, "u1", files[0].DownloadURL)
	assert.Equal(t, int64(100), files[0].Length)
	assert.Equal(t, "def", files[1].FileCode)
	for _, f := range files {
		assert.Equal(t, "1", f.FldID)
	}

	_, err = New(dood.New(srv.URL+"/api", "test-key"), g, &recorder{}).Run(context.Background())
	require.NoError(t, err)
	n, err := g.CountFiles()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestNetworkErrorScenario(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	g := newTestDB(t)

	_, err := New(dood.New(base+"/api", "test-key"), g, &recorder{}).Run(context.Background())
	assert.Equal(t, syncerr.KindTransport, syncerr.KindOf(err))

	n, err := g.CountFolders()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNonOKFolderListScenario(t *testing.T) {
	srv := mockAPI(t, `{"msg":"OK","result":{"folders":[]}}`, nil)
	g := newTestDB(t)

	_, err := New(dood.New(srv.URL+"/api", "wrong-key"), g, &recorder{}).Run(context.Background())
	assert.Equal(t, syncerr.KindAPI, syncerr.KindOf(err))

	n, err := g.CountFolders()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOneOfTwoFoldersFailsScenario(t *testing.T) {
	srv := mockAPI(t,
		`{"msg":"OK","result":{"folders":[{"fld_id":"1","name":"Movies"},{"fld_id":"2","name":"Series"}]}}`,
		map[string]string{
			"1": `{"msg":"OK","result":{"files":[{"file_code":"abc","title":"A","fld_id":"1"}]}}`,
			"2": `{"msg":"OK","result":{"files":[{"file_code":`,
		},
	)
	g := newTestDB(t)
	ev := &recorder{}

	rep, err := New(dood.New(srv.URL+"/api", "test-key"), g, ev).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.FoldersFailed)

	folders, err := g.Folders()
	require.NoError(t, err)
	assert.Len(t, folders, 2)
	assert.Equal(t, []string{"abc"}, fileCodes(t, g, "1"))
	assert.Empty(t, fileCodes(t, g, "2"))

	errs := ev.atLeast(events.Error)
	require.Len(t, errs, 1)
	assert.Equal(t, syncerr.KindDecode, syncerr.KindOf(errs[0].Data.(error)))
}

func TestFolderListWithoutResultIsFatal(t *testing.T) {
	srv := mockAPI(t, `{"msg":"OK","status":200}`, nil)
	g := newTestDB(t)

	rep, err := New(dood.New(srv.URL+"/api", "test-key"), g, &recorder{}).Run(context.Background())
	assert.Equal(t, syncerr.KindDecode, syncerr.KindOf(err))
	assert.Zero(t, rep.FoldersListed)

	n, err := g.CountFolders()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFileListWithWrongShapeFailsFolder(t *testing.T) {
	srv := mockAPI(t,
		`{"msg":"OK","result":{"folders":[{"fld_id":"1","name":"Movies"},{"fld_id":"2","name":"Series"}]}}`,
		map[string]string{
			"1": `{"msg":"OK","result":{"fils":[{"file_code":"abc","fld_id":"1"}]}}`,
			"2": `{"msg":"OK","result":{"files":[{"file_code":"def","fld_id":"2"}]}}`,
		},
	)
	g := newTestDB(t)
	ev := &recorder{}

	rep, err := New(dood.New(srv.URL+"/api", "test-key"), g, ev).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.FoldersFailed)
	assert.True(t, rep.HasFailures())
	assert.Empty(t, fileCodes(t, g, "1"))
	assert.Equal(t, []string{"def"}, fileCodes(t, g, "2"))

	errs := ev.atLeast(events.Error)
	require.Len(t, errs, 1)
	assert.Equal(t, syncerr.KindDecode, syncerr.KindOf(errs[0].Data.(error)))
	assert.Contains(t, errs[0].Data.(error).Error(), "Movies")
}
