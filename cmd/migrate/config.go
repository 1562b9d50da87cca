package main

import (
	"path/filepath"

	"libraryapi/db"
)

const defaultMigrationsRoot = "db"

// migrationsDir returns the on-disk directory holding the migrations of driver
// under root.
func migrationsDir(root, driver string) (string, error) {
	sub, err := db.Dir(driver)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, sub), nil
}
