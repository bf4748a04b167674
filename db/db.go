package db

import "github.com/lazycloud-app/go-doodsync/md"

type (
	//DataBase is the interface to persist remote folders & files in app database.
	//It abstracts ORM or DB package to simple methods, so driver change will not affect whole app.
	//
	//All writes are insert-if-absent: existing rows are never touched and a primary key collision is not an error.
	DataBase interface {
		//Init creates tables if they do not exist. Existing data is kept
		Init() error
		//SaveFolder saves folder data into DB. inserted is false if folder was already there
		SaveFolder(record md.Folder) (inserted bool, err error)
		//SaveFile saves file data into DB. inserted is false if file was already there
		SaveFile(record md.File) (inserted bool, err error)
		//RecordRun saves sync run counters
		RecordRun(run *md.SyncRun) error
	}
)
