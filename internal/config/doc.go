// Package config provides configuration loading, merging, and validation
// facilities for the content sync service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Areas, targets and the table relation catalog are read from YAML files
// (see [LoadAreas] and [LoadTableCatalog]); built-in catalogs are used when
// no file is configured.
package config
