package config

import (
	"errors"
	"slices"
	"testing"
)

type parserFunc func(data []byte, target any, keys []string) error

func (f parserFunc) Parse(data []byte, target any, keys []string) error {
	return f(data, target, keys)
}

type fetcherFunc func() ([]byte, error)

func (f fetcherFunc) Fetch() ([]byte, error) {
	return f()
}

func document() ([]byte, error) {
	return []byte("walk:\n  path: a.b\n"), nil
}

func noopParse([]byte, any, []string) error {
	return nil
}

type walkSettings struct {
	Path     string
	defaults bool
	invalid  error
}

func (s *walkSettings) SetDefaults() bool {
	return s.defaults
}

func (s *walkSettings) Validate() error {
	return s.invalid
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	for _, defaults := range []bool{true, false} {
		target := &walkSettings{defaults: defaults}
		parse := func(_ []byte, target any, _ []string) error {
			target.(*walkSettings).Path = "a.b"

			return nil
		}

		result, err := Provider(target, "walk")(parserFunc(parse), fetcherFunc(document))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result != target {
			t.Error("expected the target itself to be returned")
		}

		if result.Path != "a.b" {
			t.Errorf("expected Path %q, got %q", "a.b", result.Path)
		}
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("fetch failed")
	parseErr := errors.New("parse failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name    string
		fetch   fetcherFunc
		parse   parserFunc
		invalid error
		wantErr error
	}{
		{
			name:    "fetch error",
			fetch:   func() ([]byte, error) { return nil, fetchErr },
			parse:   noopParse,
			wantErr: fetchErr,
		},
		{
			name:    "parse error",
			fetch:   document,
			parse:   func([]byte, any, []string) error { return parseErr },
			wantErr: parseErr,
		},
		{
			name:    "validation error",
			fetch:   document,
			parse:   noopParse,
			invalid: validationErr,
			wantErr: validationErr,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			result, err := Provider(&walkSettings{invalid: testInfo.invalid}, "walk")(testInfo.parse, testInfo.fetch)

			if result != nil {
				t.Error("expected result to be nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}
		})
	}
}

func TestProvider_PassesParsedKeys(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		expected []string
	}{
		{name: "empty path", path: "", expected: nil},
		{name: "single key", path: "shell", expected: []string{"shell"}},
		{name: "dot notation", path: "services.api", expected: []string{"services", "api"}},
		{name: "bracket notation", path: "listeners[0]['tls']", expected: []string{"listeners", "0", "tls"}},
	}

	for _, testInfo := range testCases {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			var received []string

			parse := func(_ []byte, _ any, keys []string) error {
				received = keys

				return nil
			}

			_, err := Provider(&walkSettings{}, testInfo.path)(parserFunc(parse), fetcherFunc(document))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !slices.Equal(received, testInfo.expected) {
				t.Errorf("expected keys %q, got %q", testInfo.expected, received)
			}
		})
	}
}
