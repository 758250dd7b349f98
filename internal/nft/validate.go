package nft

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidSpec is returned when a spec breaks an on-chain metadata limit.
var ErrInvalidSpec = errors.New("invalid nft spec")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func specValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Validate checks the limits the token metadata program enforces. Empty names and
// URIs are allowed on purpose, as are creator shares that do not sum to 100.
func (s JobSpec) Validate() error {
	err := specValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(parts, "; "))
}

// Validate checks every spec the job will mint.
func (j Job) Validate() error {
	if j.Collection != nil {
		if err := j.Collection.Validate(); err != nil {
			return fmt.Errorf("collection: %w", err)
		}
		if j.Spec.Collection == nil {
			return fmt.Errorf("%w: collection prerequisite without a collection ref", ErrInvalidSpec)
		}
	}
	return j.Spec.Validate()
}
