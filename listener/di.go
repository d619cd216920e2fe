package listener

import (
	"fmt"
	"log/slog"

	"github.com/PascalWirtz/pwtext"

	"go.uber.org/fx"
)

// NewModule creates an Fx module for a named HTTP listener serving the
// *pwtext.Document found in the container.
//
// The name is both the module name and the DI name tag of its Config. With
// options, the module supplies that Config itself; without them the Config
// must be provided externally, for example through config.Provider.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	nameTag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		var cfg Config

		for _, apply := range opts {
			apply(&cfg)
		}

		moduleOpts = append(moduleOpts, fx.Supply(fx.Annotate(cfg, fx.ResultTags(nameTag))))
	}

	moduleOpts = append(moduleOpts, fx.Invoke(
		fx.Annotate(
			func(lifecycle fx.Lifecycle, shutdowner fx.Shutdowner, doc *pwtext.Document, listenerCfg Config) error {
				if doc == nil {
					return ErrNilDocument
				}

				srv, err := NewServer(name, NewHandler(doc), listenerCfg, func() {
					shutdownErr := shutdowner.Shutdown()
					if shutdownErr != nil {
						slog.Error("failed to trigger shutdown", "name", name, "error", shutdownErr)
					}
				})
				if err != nil {
					return err
				}

				lifecycle.Append(fx.Hook{
					OnStart: srv.Start,
					OnStop:  srv.Stop,
				})

				return nil
			},
			fx.ParamTags("", "", "", nameTag),
		),
	))

	return fx.Module(name, moduleOpts...)
}
