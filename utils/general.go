package utils

import (
	"github.com/pkg/errors"
)

// panic if err != nil
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Joins two errors to one.
func JoinErrors(one error, two error) error {
	if one == nil && two == nil {
		return nil
	}
	if one != nil && two != nil {
		return errors.Wrapf(two, "%s\nPrev Error", one.Error())
	}
	if one != nil {
		return one
	}
	return two
}

func StringInSlice(str string, s []string) bool {
	for _, x := range s {
		if x == str {
			return true
		}
	}
	return false
}
