//Package dood is a client for the DoodStream-style file hosting API.
//
//Every endpoint answers with the same envelope {msg, status, result}, so all calls go through getResult
//and differ only in result shape.
package dood

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lazycloud-app/go-doodsync/md"
)

const (
	DefaultBaseURL = "https://doodapi.com/api"
	DefaultTimeout = 30 * time.Second

	folderListEndpoint = "/folder/list"
	fileListEndpoint   = "/file/list"
)

//Client fetches folders & files from remote API. One request at a time, no retries.
type Client struct {
	baseURL string
	key     string
	//root is the parent marker for top-level folders
	root string
	hc   *http.Client
}

//New creates client with default root marker and timeout
func New(baseURL, key string) *Client {
	c := new(Client)
	c.baseURL = strings.TrimRight(baseURL, "/")
	c.key = key
	c.root = md.RootFolderID
	c.hc = &http.Client{Timeout: DefaultTimeout}

	return c
}

func (c *Client) SetRoot(r string) {
	c.root = r
}

func (c *Client) Root() string {
	return c.root
}

//SetTimeout sets request timeout. Zero disables it
func (c *Client) SetTimeout(d time.Duration) {
	c.hc.Timeout = d
}

func (c *Client) SetHTTPClient(hc *http.Client) {
	c.hc = hc
}

type (
	//List fields are pointers so a missing key differs from an empty list
	folderResult struct {
		Folders *[]md.Folder `json:"folders"`
	}

	fileResult struct {
		Files *[]md.File `json:"files"`
	}
)

func (r folderResult) checkPresent() error {
	if r.Folders == nil {
		return errors.New("result.folders is missing")
	}
	return nil
}

func (r fileResult) checkPresent() error {
	if r.Files == nil {
		return errors.New("result.files is missing")
	}
	return nil
}

//ListFolders returns folders placed directly under root
func (c *Client) ListFolders(ctx context.Context) ([]md.Folder, error) {
	res, err := getResult[folderResult](ctx, c, folderListEndpoint, c.root, "[ListFolders] GET "+folderListEndpoint)
	if err != nil {
		return nil, err
	}
	folders := *res.Folders
	for i := range folders {
		folders[i].ParentID = c.root
	}
	return folders, nil
}

//ListFiles returns files of folder fldID
func (c *Client) ListFiles(ctx context.Context, fldID string) ([]md.File, error) {
	res, err := getResult[fileResult](ctx, c, fileListEndpoint, fldID, fmt.Sprintf("[ListFiles] GET %s for folder %s", fileListEndpoint, fldID))
	if err != nil {
		return nil, err
	}
	return *res.Files, nil
}
