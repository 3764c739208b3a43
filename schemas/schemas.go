// Package schemas holds the JSON Schema documents that catalog data files are
// validated against.
package schemas

import _ "embed"

// JobRoles is the schema for job_roles.json documents.
//
//go:embed job_roles.schema.json
var JobRoles []byte

// CareerPaths is the schema for career_paths.json documents.
//
//go:embed career_paths.schema.json
var CareerPaths []byte
