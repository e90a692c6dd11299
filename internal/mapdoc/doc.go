// Package mapdoc owns the metro map document: the XML schema describing
// stations, lines and their ordered membership, the bundled Nanjing Metro
// network, and the loader that parses a document into a fully linked,
// immutable in-memory form.
//
// A document either loads completely or fails with a typed error: a
// ResourceError when the file cannot be read, a ParseError when the content
// is malformed (missing fields, duplicate ids, dangling references).
package mapdoc
