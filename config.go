// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import "github.com/sirupsen/logrus"

// logger is the package logger. Messages are only emitted when compiling with
// the build tag `debug`.
var logger = logrus.New()

// configs is used to store the values of different parameters of a window
type configs struct {
	maxgates int                // maximal number of gates in a window
	log      logrus.FieldLogger // destination of debug messages
}

func makeconfigs() *configs {
	return &configs{
		maxgates: _DEFAULTMAXGATES,
		log:      logger,
	}
}

// MaxGates is a configuration option (function). Used as a parameter in
// NewCellWindow it sets the maximal number of gates in a window. The default
// value is 128. Values smaller than 1 are ignored.
func MaxGates(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.maxgates = size
		}
	}
}

// Logger is a configuration option (function). Used as a parameter in
// NewCellWindow it replaces the package logger. Nothing is logged unless the
// library is built with the `debug` tag.
func Logger(l logrus.FieldLogger) func(*configs) {
	return func(c *configs) {
		if l != nil {
			c.log = l
		}
	}
}
