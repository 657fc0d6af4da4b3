/*

Package solid -> design principles learned through small, honest examples



Pre Words

Everything you read here handle with a grain of salt, because it is just an opinion on this subject.
This repository is not a framework and not a library you would depend on from production code.
It is a reading collection: fifteen small, independent packages,
each showing one design that goes wrong in a familiar way, and the same design after a refactor.
If you disagree with a refactor, good, that is half the point. Read the tests and argue with them.



What is in here

Three principles, five examples each:

• lsp
The Liskov Substitution Principle.
A subtype must be usable anywhere its supertype is expected, without altering the caller's expected correctness.
The examples here show hierarchies where a variant is forced to lie (a Square pretending to be a freely resizable Rectangle, an Ostrich with a Fly method)
and the refactor that lets every variant only advertise what it can honestly fulfill.

• srp
The Single Responsibility Principle.
A unit of code should have exactly one reason to change.
The examples show entities that also persist themselves, email themselves and print themselves,
and the refactor that hands each of those reasons to change to its own collaborator behind a role interface.

• ocp
The Open-Closed Principle.
A unit of code should be extendable with new behavior without modifying its existing, already-tested code.
The examples show calculators and dispatchers built on a type/string switch,
and the refactor that makes them depend on an interface so a new case is a new type, not a new branch.



How each example is laid out

Every example package contains the refactored design at its root,
and the problematic design in a problem subpackage.
The problem packages are not strawmen left to rot, they have tests too,
and those tests demonstrate the exact failure the refactor removes.
Start with the problem package of an example, make yourself believe its design is fine,
then let its test ruin that belief.



The one recurring lesson

Nearly every example reduces to the same move:
replace a rigid base abstraction that forces every variant to implement every method,
with narrow capability interfaces, so that each concrete variant only advertises the operations it can honestly fulfill,
and the caller checks the capability by type instead of discovering a runtime failure inside a method body.
The nouns change between shapes, birds, users, payments and engines.
The move does not.

*/
package solid
