package cfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xalexb/hjarta-cfg/diag"
	"github.com/0xalexb/hjarta-cfg/logging"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("parser name must not be empty")

// NewModule creates an Fx module providing a named *Parser.
// The name is used as the module name, the DI named tag and the
// diagnostics prefix. When WithFile is given, the file is loaded while
// the parser is provided; a root file that cannot be fetched fails the
// container start. When no sink or logger option is given, diagnostics
// go to a JSON slog logger at the level set by WithLogLevel.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*Parser, error) {
					return provideParser(name, opts...)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}

func provideParser(name string, opts ...Option) (*Parser, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	if options.Sink == nil && options.Logger == nil {
		logger := logging.NewLogger(logging.Config{Level: options.LogLevel}, os.Stderr)
		opts = append(opts, WithSink(diag.LoggerSink(logger)))
	}

	parser := New(name, opts...)

	if options.File != "" {
		_, err := parser.Load(options.File)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}
