package xfab

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// AssetDB is a catalog of CHR tile sheets indexed by content CRC, so tile
// sheets can be found and reused across projects.
type AssetDB struct {
	db *sql.DB
}

// Asset is one cataloged tile sheet.
type Asset struct {
	Name        string
	Path        string
	Tiles       int
	UniqueTiles int
}

// NewAssetDB opens or creates the catalog database at file.
func NewAssetDB(file string) (*AssetDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS asset (id INTEGER PRIMARY KEY NOT NULL, crc TEXT NOT NULL UNIQUE, name TEXT NOT NULL, path TEXT NOT NULL, tiles INTEGER NOT NULL, unique_tiles INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &AssetDB{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (db *AssetDB) Close() error {
	return db.db.Close()
}

// Add records an asset, replacing any previous entry with the same CRC.
func (db *AssetDB) Add(crc string, a Asset) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO asset (crc, name, path, tiles, unique_tiles) VALUES (?, ?, ?, ?, ?)", crc, a.Name, a.Path, a.Tiles, a.UniqueTiles); err != nil {
		return err
	}
	return nil
}

// Lookup computes the CRC of a file on disk and returns the matching
// cataloged asset, or nil if none is known.
func (db *AssetDB) Lookup(file string) (*Asset, error) {
	crc, err := crcFile(file)
	if err != nil {
		return nil, err
	}
	return db.FindByCRC(crc)
}

// FindByCRC returns the cataloged asset with the given CRC, or nil if
// none is known.
func (db *AssetDB) FindByCRC(crc string) (*Asset, error) {
	var a Asset
	switch err := db.db.QueryRow("SELECT name, path, tiles, unique_tiles FROM asset WHERE crc = ?", crc).Scan(&a.Name, &a.Path, &a.Tiles, &a.UniqueTiles); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &a, nil
	default:
		return nil, err
	}
}
