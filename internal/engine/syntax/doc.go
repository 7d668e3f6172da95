// Package syntax connects a document to a parser and answers questions about
// the resulting tree.
//
// The package defines the collaborator interfaces a document consumes
// (Registry, Parser, Tree, Node), a tree-sitter backed Registry, the context
// chain walk, and a debugging pretty printer.
//
// # Coordinates
//
// Parse trees report byte columns. Documents use codepoint columns. The
// functions here convert in both directions using a Source, which exposes
// the text of each row. Conversions count raw codepoints: an emoji written
// as two codepoints occupies two columns.
//
// # Registries
//
// A Registry hands out parsers by language identifier:
//
//	reg := syntax.NewTreeSitterRegistry()
//	parser, ok := reg.AcquireParser("go")
//
// Tests can supply any Registry, including RegistryFunc wrappers around
// hand-built trees.
package syntax
