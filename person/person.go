// Package person shows encapsulation: state is unexported and every setter
// validates before it mutates, so a Person is never observed holding a blank
// name or a non-positive age.
package person

import (
	"fmt"
	"strings"

	"github.com/sghaida/oofix/serrors"
)

const (
	msgEmptyName   = "Name cannot be empty"
	msgNonPositive = "Age must be positive"
)

// Person is a name and an age. The zero value is the unset state ("" and 0).
type Person struct {
	name string
	age  int
}

// New returns an unset Person.
func New() *Person { return &Person{} }

// Name returns the last name stored by SetName.
func (p *Person) Name() string { return p.name }

// SetName stores name as given. A name that is empty after trimming
// whitespace is rejected and the previous value is kept.
func (p *Person) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return serrors.With(serrors.ErrInvalidArgument, msgEmptyName)
	}
	p.name = name

	return nil
}

// Age returns the last age stored by SetAge.
func (p *Person) Age() int { return p.age }

// SetAge stores age if it is strictly positive; otherwise the previous value is kept.
func (p *Person) SetAge(age int) error {
	if age <= 0 {
		return serrors.With(serrors.ErrInvalidArgument, msgNonPositive)
	}
	p.age = age

	return nil
}

func (p *Person) String() string {
	return fmt.Sprintf("%s is %d years old.", p.name, p.age)
}
