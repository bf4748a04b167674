package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lazybark/go-pretty-code/console"
	"github.com/lazycloud-app/go-doodsync/config"
	"github.com/lazycloud-app/go-doodsync/db"
	"github.com/lazycloud-app/go-doodsync/dood"
	"github.com/lazycloud-app/go-doodsync/events"
	"github.com/lazycloud-app/go-doodsync/syncer"
)

const version = "1.0.0"

func main() {
	os.Exit(run())
}

func logfileName(t time.Time) string {
	return fmt.Sprintf("doodsync_%v-%v-%v_%v-%v-%v.log", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

//run returns process exit code, so deferred cleanups happen before exit
func run() int {
	timeStart := time.Now()

	conf, err := config.Load(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, console.ForeRed("Error getting config:"), err)
		return 1
	}
	if err = config.PromptMissing(conf, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, console.ForeRed("Error getting config:"), err)
		return 1
	}
	if err = conf.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, console.ForeRed("Invalid config:"), err)
		return 1
	}

	evProc, err := events.NewStandartLogsProcessor(filepath.Join(conf.LogDirMain, logfileName(timeStart)), conf.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, console.ForeRed("Error getting logger:"), err)
		return 1
	}
	defer evProc.Close()
	evProc.Send(events.InfoCyan, events.SourceConfig.String(), fmt.Sprintf("doodsync %s, database %s", version, conf.SQLiteDBName))

	store, err := db.NewGormSQLite(conf.SQLiteDBName)
	if err != nil {
		evProc.Send(events.Fatal, events.SourceStore.String(), err)
		return 1
	}
	defer store.Close()

	api := dood.New(conf.APIBaseURL, conf.APIKey)
	api.SetRoot(conf.RootFolderID)
	api.SetTimeout(conf.HTTPTimeout())

	s := syncer.New(api, store, evProc)
	s.SetRecordRuns(conf.RecordRuns)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Fatal errors are already on stderr via evProc
	rep, err := s.Run(ctx)
	if err != nil {
		return 1
	}

	fmt.Println("Finished processing folders and files.")
	if rep.HasFailures() {
		fmt.Println(console.ForeYellow(fmt.Sprintf("%d folders and %d files were skipped because of errors, see %s", rep.FoldersFailed, rep.FilesFailed, conf.LogDirMain)))
	}

	return 0
}
