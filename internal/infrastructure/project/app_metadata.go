package project

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/entrig/entrig/internal/domain/entities"
)

//go:embed app.schema.json
var appSchemaJSON []byte

var appSchema = mustCompileAppSchema()

func mustCompileAppSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("app.schema.json", bytes.NewReader(appSchemaJSON)); err != nil {
		panic(fmt.Sprintf("add app schema: %v", err))
	}
	schema, err := compiler.Compile("app.schema.json")
	if err != nil {
		panic(fmt.Sprintf("compile app schema: %v", err))
	}
	return schema
}

// appManifest is the subset of app.json the resolver reads.
type appManifest struct {
	Name string `json:"name"`
	Expo struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"expo"`
}

// appMetadata is what app.json contributes to the layout.
type appMetadata struct {
	Name    string
	Source  entities.NameSource
	Version string
}

// readAppMetadata loads app.json. Anything unusable is logged at debug
// level and reported as empty metadata.
func (r *LayoutResolver) readAppMetadata(ctx context.Context, path string) appMetadata {
	//nolint:gosec // G304: path is the project's app config
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.DebugContext(ctx, "app metadata unreadable", "path", path, "error", err)
		}
		return appMetadata{}
	}

	manifest, err := parseAppManifest(data)
	if err != nil {
		r.logger.DebugContext(ctx, "app metadata ignored", "path", path, "error", err)
		return appMetadata{}
	}

	meta := appMetadata{Version: r.normalizeVersion(ctx, manifest.Expo.Version)}
	switch {
	case strings.TrimSpace(manifest.Expo.Name) != "":
		meta.Name, meta.Source = manifest.Expo.Name, entities.NameFromExpoName
	case strings.TrimSpace(manifest.Name) != "":
		meta.Name, meta.Source = manifest.Name, entities.NameFromRootName
	}
	return meta
}

func parseAppManifest(data []byte) (*appManifest, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := appSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var manifest appManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}
	return &manifest, nil
}

// normalizeVersion returns the canonical semantic version, or "" when the
// value is absent or not a version.
func (r *LayoutResolver) normalizeVersion(ctx context.Context, raw string) string {
	if raw == "" {
		return ""
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		r.logger.DebugContext(ctx, "ignoring app version", "version", raw, "error", err)
		return ""
	}
	return v.String()
}
