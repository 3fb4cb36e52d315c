package database

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

const backupTimeLayout = "20060102_150405"

var backupNameRe = regexp.MustCompile(`^(\d{8}_\d{6})_pricepulse\.db\.zip$`)

func (d *Database) backupDir() string {
	return filepath.Join(filepath.Dir(d.path), "backups")
}

// Backup writes a zipped snapshot of the database into the backups directory
// next to the database file.
func (d *Database) Backup(ctx context.Context) error {
	dir := d.backupDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}

	dest := filepath.Join(dir, fmt.Sprintf("%s_pricepulse.db", time.Now().Format(backupTimeLayout)))
	if _, err := d.write.ExecContext(ctx, "VACUUM INTO ?", dest); err != nil {
		return fmt.Errorf("vacuuming database into '%s': %w", dest, err)
	}
	defer func() {
		if err := os.Remove(dest); err != nil {
			d.logger.Warn("could not remove uncompressed backup", slog.String("error", err.Error()))
		}
	}()

	zipPath := dest + ".zip"
	if err := zipFile(dest, zipPath, filepath.Base(d.path)); err != nil {
		return err
	}

	d.logger.Info("database backup complete", slog.String("filename", zipPath))
	return nil
}

func zipFile(src, dest, entryName string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create zip file: %w", err)
	}
	defer out.Close()

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open database backup for compression: %w", err)
	}
	defer in.Close()

	fileInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("get file info: %w", err)
	}

	header, err := zip.FileInfoHeader(fileInfo)
	if err != nil {
		return fmt.Errorf("create zip header: %w", err)
	}
	header.Name = entryName
	header.Method = zip.Deflate

	zipWriter := zip.NewWriter(out)
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return fmt.Errorf("create zip file entry: %w", err)
	}

	if _, err := io.Copy(writer, in); err != nil {
		return fmt.Errorf("write database to zip: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("finalize zip file: %w", err)
	}
	return nil
}

// Backups lists the backup files, oldest first.
func (d *Database) Backups() ([]string, error) {
	files, err := os.ReadDir(d.backupDir())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var names []string
	for _, file := range files {
		if backupNameRe.MatchString(file.Name()) {
			names = append(names, file.Name())
		}
	}
	return names, nil
}

func (d *Database) PurgeBackups(ctx context.Context, retentionDays int) error {
	if retentionDays < 1 {
		return nil
	}
	retentionDuration := time.Duration(retentionDays) * 24 * time.Hour

	names, err := d.Backups()
	if err != nil {
		return err
	}

	for _, name := range names {
		match := backupNameRe.FindStringSubmatch(name)
		t, err := time.ParseInLocation(backupTimeLayout, match[1], time.Local)
		if err != nil {
			d.logger.Debug("failed to parse backup timestamp", slog.String("filename", name), slog.String("error", err.Error()))
			continue
		}
		if time.Since(t) > retentionDuration {
			path := filepath.Join(d.backupDir(), name)
			d.logger.Debug("deleting old backup", slog.String("path", path))
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("remove old backup '%s': %w", path, err)
			}
		}
	}

	d.logger.Info("backup purge complete")
	return nil
}
