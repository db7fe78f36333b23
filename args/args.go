package args

import (
	"fmt"
	"strings"

	yamlcodec "github.com/0xalexb/strata/codec/yaml"

	"github.com/spf13/pflag"
)

// Option declares a named command-line option. Default may be any
// configuration value; a nil Default means the option contributes nothing
// to the defaults tier.
type Option struct {
	Name    string
	Default any
	Usage   string
}

// Set is a declared-option set backed by spf13/pflag. It implements the
// loader's ArgParser interface: Parse separates explicitly provided
// declared options from leftover tokens, with pflag's Changed tracking
// standing in for a suppressed-defaults second parse.
type Set struct {
	opts []Option
	yaml *yamlcodec.Codec
}

// NewSet creates a Set from the declared options.
func NewSet(opts ...Option) *Set {
	return &Set{
		opts: opts,
		yaml: yamlcodec.NewCodec(),
	}
}

// Defaults returns the declared defaults, omitting options without one.
func (s *Set) Defaults() map[string]any {
	defaults := make(map[string]any, len(s.opts))

	for _, opt := range s.opts {
		if opt.Default != nil {
			defaults[opt.Name] = opt.Default
		}
	}

	return defaults
}

// Parse splits argv into values for declared options and leftover tokens.
// Only options actually present in argv appear in the result; their raw
// strings are typed through the YAML scalar grammar.
func (s *Set) Parse(argv []string) (map[string]any, []string, error) {
	fs := pflag.NewFlagSet("strata", pflag.ContinueOnError)

	values := make(map[string]*string, len(s.opts))
	for _, opt := range s.opts {
		values[opt.Name] = fs.String(opt.Name, "", opt.Usage)
	}

	known, rest := s.split(argv)

	err := fs.Parse(known)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing arguments: %w", err)
	}

	explicit := make(map[string]any, len(s.opts))

	for _, opt := range s.opts {
		if !fs.Changed(opt.Name) {
			continue
		}

		parsed, err := s.yaml.Decode([]byte(*values[opt.Name]))
		if err != nil {
			return nil, nil, fmt.Errorf("value for --%s: %w", opt.Name, err)
		}

		explicit[opt.Name] = parsed
	}

	return explicit, rest, nil
}

// split separates the tokens belonging to declared options from everything
// else. A declared "--name" consumes the following token as its value
// unless that token is itself a flag.
func (s *Set) split(argv []string) (known, rest []string) {
	for i := 0; i < len(argv); i++ {
		token := argv[i]

		if strings.HasPrefix(token, "--") {
			name, _, hasInline := strings.Cut(strings.TrimPrefix(token, "--"), "=")

			if s.declared(name) {
				known = append(known, token)

				if !hasInline && i+1 < len(argv) && !strings.HasPrefix(argv[i+1], "--") {
					i++
					known = append(known, argv[i])
				}

				continue
			}
		}

		rest = append(rest, token)
	}

	return known, rest
}

func (s *Set) declared(name string) bool {
	for _, opt := range s.opts {
		if opt.Name == name {
			return true
		}
	}

	return false
}
