package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// ErrInputRequired is returned when a required input resolves to an empty value.
	ErrInputRequired = errors.New("input required and not supplied")
	// ErrInvalidBoolean is returned when a boolean input is not a YAML 1.2 core schema boolean.
	ErrInvalidBoolean = errors.New("input does not meet YAML 1.2 core schema boolean")
)

// LoadOptions controls where Load looks for input values.
type LoadOptions struct {
	// ConfigFile is an optional JSON, YAML or TOML file keyed by input name.
	// Changed flags and non-empty INPUT_<NAME> variables override it.
	ConfigFile string
	// Flags, when set, are bound to inputs by FlagName. Only flags set on the
	// command line take precedence over the environment.
	Flags *pflag.FlagSet
	// SkipRequired disables the required-input check, for commands that never
	// send anything.
	SkipRequired bool
}

// Load resolves every input declared in m. Precedence, highest first: a
// changed CLI flag, the INPUT_<NAME> environment variable, the config file,
// the manifest default. Values are whitespace-trimmed.
//
// An environment variable set to the empty string counts as unset, the same
// as in the Actions toolkit, so INPUT_TITLE="" falls through to the config
// file or the default instead of clearing them.
func Load(m *Manifest, opts LoadOptions) (*Inputs, error) {
	v := viper.New()

	for _, in := range m.Inputs {
		if err := v.BindEnv(in.Name, EnvName(in.Name)); err != nil {
			return nil, fmt.Errorf("binding %s: %w", EnvName(in.Name), err)
		}
		v.SetDefault(in.Name, in.Default)

		if opts.Flags == nil {
			continue
		}
		if f := opts.Flags.Lookup(FlagName(in.Name)); f != nil {
			if err := v.BindPFlag(in.Name, f); err != nil {
				return nil, fmt.Errorf("binding --%s: %w", f.Name, err)
			}
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	get := func(name string) string {
		return strings.TrimSpace(v.GetString(name))
	}

	if !opts.SkipRequired {
		for _, in := range m.Inputs {
			if in.Required && get(in.Name) == "" {
				return nil, fmt.Errorf("%w: %s", ErrInputRequired, in.Name)
			}
		}
	}

	includeImage, err := parseBool(InputIncludeImage, get(InputIncludeImage))
	if err != nil {
		return nil, err
	}

	return &Inputs{
		WebhookURL:     get(InputWebhookURL),
		Title:          get(InputTitle),
		Message:        get(InputMessage),
		AvatarURL:      get(InputAvatarURL),
		Username:       get(InputUsername),
		Colour:         get(InputColour),
		IncludeImage:   includeImage,
		CustomImageURL: get(InputCustomImageURL),
		TitleURL:       get(InputTitleURL),
	}, nil
}

func parseBool(name, raw string) (bool, error) {
	switch raw {
	case "", "false", "False", "FALSE":
		return false, nil
	case "true", "True", "TRUE":
		return true, nil
	}
	return false, fmt.Errorf("%w: %s=%q (use true | True | TRUE | false | False | FALSE)", ErrInvalidBoolean, name, raw)
}
