// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Country is one entry of the provider's supported-country list.
type Country struct {
	// Key is the ISO 3166-1 alpha-2 country code in upper case (e.g. "PL").
	Key string `json:"key"`

	// Value is the human readable country name (e.g. "Poland").
	Value string `json:"value"`
}
