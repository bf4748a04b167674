package db

import (
	"errors"
	"fmt"

	"github.com/lazycloud-app/go-doodsync/common/syncerr"
	"github.com/lazycloud-app/go-doodsync/md"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	GORM struct {
		db *gorm.DB
	}
)

var errEmptyKey = errors.New("empty primary key")

func (g *GORM) SetDB(d *gorm.DB) {
	g.db = d
}

func (g *GORM) DB() *gorm.DB {
	return g.db
}

//Init creates or completes tables. Unlike filesystem snapshots, remote records are kept between runs,
//so nothing is dropped here
func (g *GORM) Init() error {
	if err := g.db.AutoMigrate(&md.Folder{}, &md.File{}, &md.SyncRun{}); err != nil {
		return syncerr.Storage("[Init] creating tables", err)
	}
	return nil
}

func (g *GORM) SaveFolder(record md.Folder) (bool, error) {
	if record.FldID == "" {
		return false, syncerr.Storage(fmt.Sprintf("[SaveFolder] folder '%s'", record.Name), errEmptyKey)
	}
	return g.insertIfAbsent(&record, fmt.Sprintf("[SaveFolder] folder %s", record.FldID))
}

func (g *GORM) SaveFile(record md.File) (bool, error) {
	if record.FileCode == "" {
		return false, syncerr.Storage(fmt.Sprintf("[SaveFile] file '%s'", record.Title), errEmptyKey)
	}
	return g.insertIfAbsent(&record, fmt.Sprintf("[SaveFile] file %s", record.FileCode))
}

//insertIfAbsent relies on INSERT ... ON CONFLICT DO NOTHING, so the check and the write are one statement
func (g *GORM) insertIfAbsent(record interface{}, op string) (bool, error) {
	res := g.db.Clauses(clause.OnConflict{DoNothing: true}).Create(record)
	if res.Error != nil {
		return false, syncerr.Storage(op, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (g *GORM) RecordRun(run *md.SyncRun) error {
	if err := g.db.Create(run).Error; err != nil {
		return syncerr.Storage(fmt.Sprintf("[RecordRun] run %s", run.RunID), err)
	}
	return nil
}

func (g *GORM) CountFolders() (n int64, err error) {
	err = g.db.Model(&md.Folder{}).Count(&n).Error
	return
}

func (g *GORM) CountFiles() (n int64, err error) {
	err = g.db.Model(&md.File{}).Count(&n).Error
	return
}

//Folders returns all saved folders ordered by id
func (g *GORM) Folders() (folders []md.Folder, err error) {
	err = g.db.Order("fld_id").Find(&folders).Error
	return
}

//FilesInFolder returns files saved for folder fldID ordered by file code
func (g *GORM) FilesInFolder(fldID string) (files []md.File, err error) {
	err = g.db.Where("fld_id = ?", fldID).Order("file_code").Find(&files).Error
	return
}

//Runs returns recorded sync runs, oldest first
func (g *GORM) Runs() (runs []md.SyncRun, err error) {
	err = g.db.Order("id").Find(&runs).Error
	return
}

func (g *GORM) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
