package syncer

import (
	"fmt"
	"time"

	"github.com/lazycloud-app/go-doodsync/md"
)

//Report holds counters of one sync run. Existing means the record was already in DB and left untouched
type Report struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time

	FoldersListed   int
	FoldersSaved    int
	FoldersExisting int
	FoldersFailed   int

	FilesListed   int
	FilesSaved    int
	FilesExisting int
	FilesFailed   int

	FldIDMismatches int
}

//SyncRun converts report to DB model
func (r Report) SyncRun() md.SyncRun {
	return md.SyncRun{
		RunID:           r.RunID,
		StartedAt:       r.StartedAt,
		FinishedAt:      r.FinishedAt,
		FoldersListed:   r.FoldersListed,
		FoldersSaved:    r.FoldersSaved,
		FoldersFailed:   r.FoldersFailed,
		FilesListed:     r.FilesListed,
		FilesSaved:      r.FilesSaved,
		FilesFailed:     r.FilesFailed,
		FldIDMismatches: r.FldIDMismatches,
	}
}

func (r Report) String() string {
	return fmt.Sprintf("folders: %d listed, %d new, %d existing, %d failed; files: %d listed, %d new, %d existing, %d failed; time: %v",
		r.FoldersListed, r.FoldersSaved, r.FoldersExisting, r.FoldersFailed,
		r.FilesListed, r.FilesSaved, r.FilesExisting, r.FilesFailed,
		r.FinishedAt.Sub(r.StartedAt))
}

//HasFailures reports whether any folder or file was skipped because of an error
func (r Report) HasFailures() bool {
	return r.FoldersFailed > 0 || r.FilesFailed > 0
}
