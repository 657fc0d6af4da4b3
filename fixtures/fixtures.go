// Package fixtures gives the tests of the example packages random but plausible input data.
//
// The values are intentionally boring. A fixture that is clever enough to be interesting
// is clever enough to hide a bug.
package fixtures

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"
)

var mutex sync.Mutex

var random = rand.New(rand.NewSource(time.Now().UnixNano()))

// FullName returns a random human name for user and employee entities.
func FullName() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.FullName(randomdata.RandomGender)
}

// Email returns a random email address.
func Email() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Email()
}

// SillyName returns a random single word, usable wherever a test needs an arbitrary title or label.
func SillyName() string {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.SillyName()
}

var departments = []string{
	`Accounting`,
	`Engineering`,
	`Human Resources`,
	`Legal`,
	`Sales`,
}

// Department returns a random department name for employee entities.
func Department() string {
	mutex.Lock()
	defer mutex.Unlock()
	return departments[random.Intn(len(departments))]
}

// Amount returns a random monetary amount between min and max.
func Amount(min, max float64) float64 {
	mutex.Lock()
	defer mutex.Unlock()
	return min + random.Float64()*(max-min)
}

// Number returns a random int in the [min, max) range.
func Number(min, max int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return min + random.Intn(max-min)
}
