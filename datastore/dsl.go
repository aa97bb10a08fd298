// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package datastore

import "code.hybscloud.com/reader"

// Get reads key. A missing key is absent.
func Get(key string) reader.OptionReader[Datastore, string] {
	return func(ds Datastore) reader.Option[string] {
		v, ok := ds.Get(key)
		return reader.OptionOf(v, ok)
	}
}

// GetOr reads key, substituting fallback when it is missing.
func GetOr(key, fallback string) reader.Reader[Datastore, string] {
	return reader.GetOrElseReader(Get(key), fallback)
}

// Set stores value under key.
func Set(key, value string) reader.Reader[Datastore, struct{}] {
	return func(ds Datastore) struct{} {
		ds.Set(key, value)
		return struct{}{}
	}
}
