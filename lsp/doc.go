/*

Package lsp collects examples about the Liskov Substitution Principle.

A subtype must be usable anywhere its supertype is expected,
without altering the caller's expected correctness.
When a variant can only satisfy its base abstraction by mutating a sibling field behind the caller's back,
or by failing at runtime from a method it never wanted,
the abstraction is wrong, not the variant.

Each example package below holds a refactored design at its root
and the original problematic design in a problem subpackage:

	shapes   - a Square pretending to be a freely resizable Rectangle
	birds    - an Ostrich with a Fly method it cannot honor
	access   - a guest user that fails instead of answering an access question
	payments - a free trial forced through a payment processing contract
	engines  - an electric engine refusing the start mechanism it inherited

The refactors all make the same move with different nouns:
narrow the base abstraction down to what every variant can honestly fulfill,
and express the rest as capability interfaces checked by type at the call site.

*/
package lsp
