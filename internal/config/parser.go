package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	yatraerrors "github.com/alexisbeaulieu97/yatra/pkg/errors"
)

var (
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
	validate      = validator.New()
)

// Load reads the configuration at path on top of the defaults. An empty path
// or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, yatraerrors.NewParseError(path, 0, err)
	}

	return Parse(path, data, cfg)
}

// Parse decodes data over base and validates the result.
func Parse(path string, data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, yatraerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct rules.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return yatraerrors.NewValidationError(fe.Namespace(), fmt.Sprintf("failed %q rule (value %v)", fe.Tag(), fe.Value()), err)
	}
	return yatraerrors.NewValidationError("", err.Error(), err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
