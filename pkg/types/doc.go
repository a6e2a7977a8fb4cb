// Package types defines the entity types and standard error values shared by
// the sweets catalogs, directory, and product builders.
//
// Products are assembled by the builders in package product and are read-only
// once built. Catalog and directory entries are plain values.
package types
