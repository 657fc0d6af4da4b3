/*

Package ocp collects examples about the Open-Closed Principle.

A unit of code should be extendable with new behavior
without modifying its existing, already-tested code.
A calculator or dispatcher built on a type switch or a string switch
is closed the wrong way around:
every new case reopens the switch, and with it every test that already passed.

Each example package below holds a refactored design at its root
and the original switch-ridden design in a problem subpackage:

	areas         - an area calculator with one method and one branch per shape
	discounts     - a discount calculator switching on a discount type string
	logging       - a logger switching on a destination string
	payments      - a payment processor switching on a payment type string
	notifications - a notification service switching on a channel string

The refactors make each unit depend on an interface,
so that a new shape, discount, destination, payment method or channel
is a new type in a new file, and the already-tested code stays untouched.
Several tests below prove the point by defining a brand new implementation
inside the test and feeding it to the unchanged unit.

*/
package ocp
