// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package datastore

import "go.uber.org/zap"

type loggedDatastore struct {
	Datastore
	log *zap.Logger
}

// Logged wraps ds so every capability call is logged at debug level.
// A nil logger is replaced with zap.NewNop().
func Logged(ds Datastore, logger *zap.Logger) Datastore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return loggedDatastore{
		Datastore: ds,
		log:       logger.Named("datastore"),
	}
}

// Get implements the Datastore interface.
func (d loggedDatastore) Get(key string) (string, bool) {
	v, ok := d.Datastore.Get(key)
	d.log.Debug("get", zap.String("key", key), zap.Bool("found", ok))
	return v, ok
}

// Set implements the Datastore interface.
func (d loggedDatastore) Set(key, value string) {
	d.Datastore.Set(key, value)
	d.log.Debug("set", zap.String("key", key), zap.Int("value_length", len(value)))
}
