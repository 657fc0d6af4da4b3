package problem_test

import (
	"fmt"

	"github.com/goprinciples/solid/srp/settings/problem"
)

func ExampleUserSettings() {
	var manager problem.UserSettings
	u := problem.User{Username: `marvin`}

	manager.ChangeEmail(&u, `marvin@heartofgold.example`)
	manager.SaveSettings(&u)

	fmt.Println(u.Email)
	// Output:
	// settings saved
	// marvin@heartofgold.example
}
