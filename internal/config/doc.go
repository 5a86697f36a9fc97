// Package config resolves the effective validator configuration.
//
// Configuration is layered; later layers win:
//
//  1. built-in defaults (see DefaultEffective)
//  2. replmeta.yaml in the package root
//  3. an options file with KEY=VALUE lines using the content package
//     validator option names (includedNodePathPatternsAndTypes, ...)
//  4. REPLMETA_* environment variables
//  5. command line flags
//
// Every layer is expressed as Options, a flat name/value map, and applied
// with Effective.Apply.
package config
