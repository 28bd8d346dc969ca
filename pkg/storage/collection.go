package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetCapturesDir returns the directory holding collection files.
func GetCapturesDir() string {
	return filepath.Join(WorkspaceDirName, "captures")
}

// LoadCollection reads a collection file, validates it against the
// collection schema and unmarshals it.
func LoadCollection(path string) (*Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection file: %w", err)
	}

	if err := ValidateCollection(data); err != nil {
		return nil, fmt.Errorf("invalid collection %s: %w", path, err)
	}

	var c Collection
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse collection YAML: %w", err)
	}
	return &c, nil
}

// SaveCollection writes c to path, creating parent directories as
// needed.
func SaveCollection(c *Collection, path string) error {
	if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
		path += ".yaml"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ListCollections lists the names of collection files saved in the
// captures directory.
func ListCollections() ([]string, error) {
	dir := GetCapturesDir()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read captures directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
			continue
		}
		names = append(names, strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
	}
	return names, nil
}

// WalkRequests visits every request in document order: ungrouped
// requests first, then each group depth-first. The path holds the
// chain of group names and is empty for ungrouped requests. Visited
// requests are addressable, so callers can update them in place.
func (c *Collection) WalkRequests(visit func(path []string, req *Request)) {
	for i := range c.Requests {
		visit(nil, &c.Requests[i])
	}

	var walk func(path []string, g *Group)
	walk = func(path []string, g *Group) {
		groupPath := append(append([]string{}, path...), g.Name)
		for i := range g.Requests {
			visit(groupPath, &g.Requests[i])
		}
		for i := range g.Groups {
			walk(groupPath, &g.Groups[i])
		}
	}
	for i := range c.Groups {
		walk(nil, &c.Groups[i])
	}
}

// FindRequest returns the first request with the given name anywhere in
// the collection, or nil.
func (c *Collection) FindRequest(name string) *Request {
	var found *Request
	c.WalkRequests(func(_ []string, req *Request) {
		if found == nil && req.Name == name {
			found = req
		}
	})
	return found
}
