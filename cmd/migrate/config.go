package main

import (
	"io/fs"
	"os"

	"bookcatalog/db"
)

// migrationSource picks the migration files for driver. MIGRATIONS_DIR points
// goose at an on-disk directory; otherwise the embedded files are used.
func migrationSource(override, driver string) (fsys fs.FS, dir, dialect string, err error) {
	dir, dialect, err = db.Migrations(driver)
	if err != nil {
		return nil, "", "", err
	}
	if override != "" {
		return os.DirFS(override), ".", dialect, nil
	}
	return db.FS(), dir, dialect, nil
}
