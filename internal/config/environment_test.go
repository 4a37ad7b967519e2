package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

func withEnv(t *testing.T, env map[string]string) {
	original := getEnv
	t.Cleanup(func() {
		getEnv = original
	})

	getEnv = func(key string) string {
		return env[key]
	}
}

func TestInterpolatedStringSlice(t *testing.T) {
	type testCase struct {
		Path   string
		Env    map[string]string
		Assert func(t *testing.T, parsed InterpolatedStringSlice)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/interpolated-string-slice.yml",
			Env: map[string]string{
				"FIRST":  "foo",
				"DOMAIN": "acme.test",
			},
			Assert: func(t *testing.T, parsed InterpolatedStringSlice) {
				if e, g := 2, len(parsed); e != g {
					t.Fatalf("len(parsed): expected '%v', got '%v'", e, g)
				}

				if e, g := "foo", parsed[0]; e != g {
					t.Errorf("parsed[0]: expected '%v', got '%v'", e, g)
				}

				if e, g := "email endsWith '@acme.test'", parsed[1]; e != g {
					t.Errorf("parsed[1]: expected '%v', got '%v'", e, g)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			data, err := os.ReadFile(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			withEnv(t, tc.Env)

			config := struct {
				Values InterpolatedStringSlice `yaml:"values"`
			}{}

			if err := yaml.Unmarshal(data, &config); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, config.Values)
			}
		})
	}
}

func TestInterpolatedBool(t *testing.T) {
	type testCase struct {
		Env      map[string]string
		Expected bool
	}

	testCases := []testCase{
		{Env: map[string]string{}, Expected: true},
		{Env: map[string]string{"SIGNUP_ENABLED": "false"}, Expected: false},
	}

	data, err := os.ReadFile("testdata/environment/interpolated-bool.yml")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			withEnv(t, tc.Env)

			config := struct {
				Enabled InterpolatedBool `yaml:"enabled"`
			}{}

			if err := yaml.Unmarshal(data, &config); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, bool(config.Enabled); e != g {
				t.Errorf("config.Enabled: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestInterpolatedDuration(t *testing.T) {
	type testCase struct {
		Path   string
		Env    map[string]string
		Assert func(t *testing.T, parsed *InterpolatedDuration)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/interpolated-duration.yml",
			Env: map[string]string{
				"MY_DURATION": "30s",
			},
			Assert: func(t *testing.T, parsed *InterpolatedDuration) {
				if e, g := 30*time.Second, parsed; e != time.Duration(*g) {
					t.Errorf("parsed: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/interpolated-duration.yml",
			Env: map[string]string{
				"MY_DURATION": "1000",
			},
			Assert: func(t *testing.T, parsed *InterpolatedDuration) {
				if e, g := time.Microsecond, parsed; e != time.Duration(*g) {
					t.Errorf("parsed: expected '%v', got '%v'", e, g)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			data, err := os.ReadFile(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			withEnv(t, tc.Env)

			config := struct {
				Duration *InterpolatedDuration `yaml:"duration"`
			}{
				Duration: NewInterpolatedDuration(-1),
			}

			if err := yaml.Unmarshal(data, &config); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, config.Duration)
			}
		})
	}
}
