/*

Package srp collects examples about the Single Responsibility Principle.

A unit of code should have exactly one reason to change.
An entity that also persists itself, emails itself or prints itself
has collected the reasons to change of a repository, a mailer and a presenter,
and every one of those concerns now has to move whenever any of them does.

Each example package below holds a refactored design at its root
and the original God object in a problem subpackage:

	users     - a User that saves itself and sends its own verification mail
	reports   - a Report that also prints itself
	employees - an Employee that calculates its own pay, saves itself and reports on itself
	orders    - an Order that manages items, persistence and presentation at once
	settings  - a UserSettings that both edits and persists settings

The refactors hand each extra concern to its own collaborator behind a role interface.
The entity goes back to being data,
and each collaborator can change, or be replaced in a test, on its own.

*/
package srp
