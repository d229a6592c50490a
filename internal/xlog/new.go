package xlog

import "go.uber.org/zap"

// NewRoot builds the process's root logger: development (console,
// colorized) when verbose is set, production (JSON) otherwise.
func NewRoot(verbose bool) (Logger, error) {
	var (
		z   *zap.Logger
		err error
	)
	if verbose {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return New(z), nil
}
