package worker

import "github.com/pkg/errors"

func errRange(field string, value int) error {
	return errors.Errorf("worker: option %s out of range: %d", field, value)
}
