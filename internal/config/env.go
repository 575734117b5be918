// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Unset variables keep their
// zero value so that the defaults layer wins during the merge.
//
// When several variables are malformed at once the returned error names every
// one of them instead of only the first.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{})
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) && len(aggErr.Errors) > 1 {
		msgs := make([]string, 0, len(aggErr.Errors))
		for _, e := range aggErr.Errors {
			msgs = append(msgs, e.Error())
		}
		return fmt.Errorf("invalid course-auth env configuration (%d problems): %s: %w",
			len(aggErr.Errors), strings.Join(msgs, "; "), err)
	}

	return fmt.Errorf("invalid course-auth env configuration: %w", err)
}
