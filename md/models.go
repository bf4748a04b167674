package md

import "time"

//RootFolderID is the parent marker used by the remote API for top-level folders
const RootFolderID = "0"

//GORM-compatible models. JSON tags follow remote API payloads, column tags follow local schema.
type (
	//Folder represents remote folder data into DB
	Folder struct {
		FldID    string `json:"fld_id" gorm:"column:fld_id;primaryKey"`
		Name     string `json:"name" gorm:"column:name"`
		ParentID string `json:"-" gorm:"column:parent_id"`
	}

	//File represents remote file data into DB
	File struct {
		FileCode    string `json:"file_code" gorm:"column:file_code;primaryKey"`
		Title       string `json:"title" gorm:"column:title"`
		DownloadURL string `json:"download_url" gorm:"column:download_url"`
		SingleImg   string `json:"single_img" gorm:"column:single_img"`
		Length      int64  `json:"length" gorm:"column:length"`
		Views       int64  `json:"views" gorm:"column:views"`
		Uploaded    string `json:"uploaded" gorm:"column:uploaded"`
		FldID       string `json:"fld_id" gorm:"column:fld_id"`
		Name        string `json:"name" gorm:"column:name"`
	}

	//SyncRun holds counters of one completed sync run
	SyncRun struct {
		ID              uint      `gorm:"primaryKey"`
		RunID           string    `gorm:"uniqueIndex"`
		StartedAt       time.Time
		FinishedAt      time.Time
		FoldersListed   int
		FoldersSaved    int
		FoldersFailed   int
		FilesListed     int
		FilesSaved      int
		FilesFailed     int
		FldIDMismatches int `gorm:"column:fld_id_mismatches"`
	}
)

func (Folder) TableName() string { return "folders" }

func (File) TableName() string { return "files" }

func (SyncRun) TableName() string { return "sync_runs" }
