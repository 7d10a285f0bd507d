package merger

import (
	"errors"
	"reflect"
)

// Validation failures form a fixed taxonomy. They indicate a caller contract
// violation and are raised before any report is loaded or written.
var (
	ErrMissingSources           = errors.New("no report sources specified")
	ErrSourcesNotASequence      = errors.New("report sources must be an ordered list")
	ErrEmptySourceList          = errors.New("report source list is empty")
	ErrInvalidSourceElementType = errors.New("report source list may only contain strings")
	ErrMissingDestination       = errors.New("no destination specified")
	ErrInvalidDestinationType   = errors.New("destination must be a string")
)

// validateSources checks the source list is a non-empty ordered sequence of
// strings and returns it as one. Rules short-circuit in a fixed order so the
// reported failure is deterministic.
func validateSources(sources any) ([]string, error) {
	if sources == nil {
		return nil, ErrMissingSources
	}

	v := reflect.ValueOf(sources)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, ErrSourcesNotASequence
	}

	if v.Len() == 0 {
		return nil, ErrEmptySourceList
	}

	paths := make([]string, v.Len())
	for i := 0; i < v.Len(); i++ {
		pth, ok := v.Index(i).Interface().(string)
		if !ok {
			return nil, ErrInvalidSourceElementType
		}
		paths[i] = pth
	}

	return paths, nil
}

// validateDestination checks the destination identifier is a non-empty string.
func validateDestination(destination any) (string, error) {
	if destination == nil {
		return "", ErrMissingDestination
	}

	pth, ok := destination.(string)
	if !ok {
		return "", ErrInvalidDestinationType
	}

	if pth == "" {
		return "", ErrMissingDestination
	}

	return pth, nil
}
