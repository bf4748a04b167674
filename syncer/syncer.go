//Package syncer copies remote folders and their files into local DB.
//
//The run is strictly sequential: list folders, then for each folder save it, list its files and save them.
//Only schema init and the folder listing are fatal, everything below is logged and skipped.
package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/lazycloud-app/go-doodsync/db"
	"github.com/lazycloud-app/go-doodsync/events"
	"github.com/lazycloud-app/go-doodsync/md"
)

//Lister is the remote side of the sync
type Lister interface {
	ListFolders(ctx context.Context) ([]md.Folder, error)
	ListFiles(ctx context.Context, fldID string) ([]md.File, error)
}

type Syncer struct {
	api Lister
	db  db.DataBase
	ev  events.EventProcessor
	//recordRuns makes Run save its Report into sync_runs
	recordRuns bool
}

func New(api Lister, d db.DataBase, ev events.EventProcessor) *Syncer {
	return &Syncer{api: api, db: d, ev: ev, recordRuns: true}
}

func (s *Syncer) SetRecordRuns(r bool) {
	s.recordRuns = r
}

//Run performs one sync. Returned error means the run was aborted: schema init or folder listing failed,
//or ctx was done. Per-folder and per-file failures are only counted in Report
func (s *Syncer) Run(ctx context.Context) (Report, error) {
	rep := Report{StartedAt: time.Now()}
	record := s.recordRuns

	id, err := uuid.NewV4()
	if err != nil {
		s.ev.Send(events.Warn, events.SourceSyncRun.String(), fmt.Errorf("[Run] making run id, run will not be recorded -> %w", err))
		record = false
	} else {
		rep.RunID = id.String()
	}
	s.ev.SendVerbose(events.InfoCyan, events.SourceSyncRun.String(), fmt.Sprintf("Run %s started", rep.RunID))

	if err := s.db.Init(); err != nil {
		s.ev.Send(events.Fatal, events.SourceStore.String(), err)
		return rep, err
	}

	folders, err := s.api.ListFolders(ctx)
	if err != nil {
		s.ev.Send(events.Fatal, events.SourceFetcher.String(), err)
		return rep, err
	}
	rep.FoldersListed = len(folders)
	s.ev.Send(events.Info, events.SourceFetcher.String(), fmt.Sprintf("Got %d folders", len(folders)))

	for _, folder := range folders {
		if err := ctx.Err(); err != nil {
			rep.FinishedAt = time.Now()
			err = fmt.Errorf("[Run] interrupted before folder %s -> %w", folder.FldID, err)
			s.ev.Send(events.Fatal, events.SourceSyncRun.String(), err)
			return rep, err
		}
		s.syncFolder(ctx, folder, &rep)
	}
	rep.FinishedAt = time.Now()

	if record {
		run := rep.SyncRun()
		if err := s.db.RecordRun(&run); err != nil {
			s.ev.Send(events.Warn, events.SourceStore.String(), err)
		}
	}

	s.ev.Send(events.InfoGreen, events.SourceSyncRun.String(), "Run finished. "+rep.String())

	return rep, nil
}

//syncFolder saves folder, then fetches and saves its files.
//Files are not fetched if folder could not be saved, so DB never has files of unknown folder
func (s *Syncer) syncFolder(ctx context.Context, folder md.Folder, rep *Report) {
	inserted, err := s.db.SaveFolder(folder)
	if err != nil {
		rep.FoldersFailed++
		s.ev.Send(events.Error, events.SourceStore.String(), fmt.Errorf("[syncFolder] error saving folder '%s' -> %w", folder.Name, err))
		return
	}
	if inserted {
		rep.FoldersSaved++
	} else {
		rep.FoldersExisting++
		s.ev.SendVerbose(events.Info, events.SourceStore.String(), fmt.Sprintf("Folder %s (%s) already saved", folder.FldID, folder.Name))
	}

	files, err := s.api.ListFiles(ctx, folder.FldID)
	if err != nil {
		rep.FoldersFailed++
		s.ev.Send(events.Error, events.SourceFetcher.String(), fmt.Errorf("[syncFolder] error fetching files for folder '%s', skipping it -> %w", folder.Name, err))
		return
	}
	rep.FilesListed += len(files)

	for _, file := range files {
		s.syncFile(folder, file, rep)
	}
}

//syncFile stores file under the folder it was listed for.
//Self-reported fld_id is only checked: empty one is filled, a different one is logged and replaced
func (s *Syncer) syncFile(folder md.Folder, file md.File, rep *Report) {
	if file.FldID == "" {
		file.FldID = folder.FldID
	} else if file.FldID != folder.FldID {
		rep.FldIDMismatches++
		s.ev.Send(events.Warn, events.SourceFetcher.String(), fmt.Sprintf("File %s listed for folder %s reports folder %s, saving it under %s", file.FileCode, folder.FldID, file.FldID, folder.FldID))
		file.FldID = folder.FldID
	}

	inserted, err := s.db.SaveFile(file)
	if err != nil {
		rep.FilesFailed++
		s.ev.Send(events.Error, events.SourceStore.String(), fmt.Errorf("[syncFile] error saving file of folder %s -> %w", folder.FldID, err))
		return
	}
	if inserted {
		rep.FilesSaved++
	} else {
		rep.FilesExisting++
	}
}
