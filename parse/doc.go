/*
Package parse resolves token lists against a rule tree.

A [Resolver] wraps one validated tree and runs resolution passes over it. A
pass walks tokens left to right in a single sweep, no backtracking: each token
either enters a subcommand scope, raises a flag, binds a value, fills a
positional slot, or sends everything remaining into a catch-all. The result is
a [Context] holding the matched subcommand path, the rules reachable in the
final scope, and the bound values.

Passes come in two modes sharing the same sweep. [Resolver.Resolve] is strict:
unknown tokens, bad values, and unmet required rules fail with a typed error.
[Resolver.ResolveDry] is tolerant: unknown tokens are skipped and nothing is
required, which lets help and completion discover how deep into the command
tree a partial line reaches, like "app sub --help" landing in sub's scope even
though "--help" isn't part of the grammar.

A pass keeps all of its state locally, so one Resolver can serve concurrent
passes over the same tree.
*/
package parse
