package main

import (
	"encoding/json"
	"log/slog"
	"os"
)

// LoadResourceDB reads the static skill → resources mapping from a JSON
// file. A missing file yields an empty mapping, not an error; a present but
// unreadable file is reported.
func LoadResourceDB(path string) (ResourceDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("resource database file not found, roadmaps will have no resources", "path", path)
			return ResourceDB{}, nil
		}
		return nil, err
	}

	var db ResourceDB
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, err
	}
	return db, nil
}
