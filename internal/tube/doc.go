// Package tube implements the metro network graph engine and the Manager
// facade in front of it.
//
// The engine derives an undirected weighted graph from a loaded map document:
// consecutive stations on a line are connected by travel edges, and stations
// sharing a name across lines are connected by cheaper interchange edges.
// Shortest routes are found with Dijkstra's algorithm; the small fixed
// positive interchange cost makes routes with fewer transfers win ties.
//
// The Manager loads the document once at construction and is safe for
// concurrent read-only use afterwards.
package tube
