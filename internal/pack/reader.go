package pack

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"
	"strconv"
)

// Reader reads textures from a pack archive.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens a pack archive for reading.
func OpenReader(path string) (*Reader, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro&immutable=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='textures'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain textures table")
	}

	return &Reader{
		db:   db,
		path: path,
	}, nil
}

// ReadTexture reads a texture from the archive and returns ungzipped PNG
// data plus the frame count stored with it.
func (r *Reader) ReadTexture(key string) ([]byte, int, error) {
	var compressedData []byte
	var frames int
	err := r.db.QueryRow(
		"SELECT data, frames FROM textures WHERE key=?", key,
	).Scan(&compressedData, &frames)

	if err == sql.ErrNoRows {
		return nil, 0, fmt.Errorf("texture not found: %q", key)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query texture: %w", err)
	}

	uncompressed, err := gzipDecompress(compressedData)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decompress texture: %w", err)
	}

	return uncompressed, frames, nil
}

// Keys returns the texture keys present in the archive, sorted.
func (r *Reader) Keys() ([]string, error) {
	rows, err := r.db.Query("SELECT key FROM textures ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to query keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keys: %w", err)
	}
	return keys, nil
}

// Metadata reads metadata from the archive.
func (r *Reader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	metaMap := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		metaMap[name] = value
	}
	if err := rows.Err(); err != nil {
		return Metadata{}, fmt.Errorf("error iterating metadata: %w", err)
	}

	meta := Metadata{}
	meta.Name = metaMap["name"]
	meta.Description = metaMap["description"]
	meta.Generator = metaMap["generator"]
	meta.Version = metaMap["version"]

	if v, ok := metaMap["size"]; ok {
		if i, err := strconv.Atoi(v); err == nil {
			meta.Size = i
		}
	}
	if v, ok := metaMap["frames"]; ok {
		if i, err := strconv.Atoi(v); err == nil {
			meta.Frames = i
		}
	}
	if v, ok := metaMap["seed"]; ok {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			meta.Seed = i
		}
	}

	return meta, nil
}

// Close closes the database connection.
func (r *Reader) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func gzipDecompress(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	uncompressed, err := io.ReadAll(gr)
	if err != nil {
		return nil, err
	}

	return uncompressed, nil
}
