// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Course is an entry of the course catalog.
type Course struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Page limits a listing. Zero values mean "no limit" and "from the start".
type Page struct {
	Limit  uint64
	Offset uint64
}
