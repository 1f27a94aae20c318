/*
Package rule defines the grammar elements a command line is matched against.

A grammar is a tree: the root scope holds rules, and every [Subcommand] opens
a nested scope with rules of its own. Rules are built once with the New*
constructors and their fluent setters, then treated as read-only. The parse
package walks token lists against the tree without ever mutating it, so one
tree can serve any number of resolution passes, concurrent ones included.

The concrete rule types here are the complete set. Code that consumes a
grammar switches over them exhaustively instead of probing for capabilities.
*/
package rule
