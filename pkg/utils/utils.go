// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// ResourcePrefix is the prefix of the names of all resources created by tests.
const ResourcePrefix = "cloudtest"

// ResourceName returns a unique name for a test resource of the given kind, e.g. cloudtest-server-1b4e28ba.
func ResourceName(kind string) string {
	return fmt.Sprintf("%s-%s-%s", ResourcePrefix, kind, uuid.NewString()[:8])
}

// IsTestResource returns whether name was created by ResourceName.
func IsTestResource(name string) bool {
	match, _ := SimpleMatch(ResourcePrefix+"-*", name)
	return match
}

// SimpleMatch returns whether the given pattern matches the given text.
// It also returns a score indicating the match between `pattern` and `text`. The higher the score the higher the match.
// Only simple wildcard patterns are supposed to be passed, e.g. '*', 'tex*'.
func SimpleMatch(pattern, text string) (bool, int) {
	const wildcard = "*"
	if pattern == wildcard {
		return true, 0
	}
	if pattern == text {
		return true, len(text)
	}
	if strings.HasSuffix(pattern, wildcard) && strings.HasPrefix(text, pattern[:len(pattern)-1]) {
		s := strings.SplitAfterN(text, pattern[:len(pattern)-1], 2)
		return true, len(s[0])
	}
	if strings.HasPrefix(pattern, wildcard) && strings.HasSuffix(text, pattern[1:]) {
		i := strings.LastIndex(text, pattern[1:])
		return true, len(text) - i
	}

	return false, 0
}

// BestMatch returns the candidate with the highest SimpleMatch score for pattern.
func BestMatch(pattern string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore = -1
	)
	for _, candidate := range candidates {
		if match, score := SimpleMatch(pattern, candidate); match && score > bestScore {
			best, bestScore = candidate, score
		}
	}
	return best, bestScore >= 0
}

// Retry performs a function with retries, delay, and a max number of attempts.
// It stops early if ctx is canceled.
func Retry(ctx context.Context, maxRetries int, delay time.Duration, log logr.Logger, fn func() error) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = fn()
		if err == nil {
			return nil
		}
		if i == maxRetries-1 {
			break
		}
		log.Info("Attempt failed, retrying", "attempt", i+1, "delay", delay, "error", err.Error())
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w (last error: %v)", ctx.Err(), err)
		case <-time.After(delay):
		}
	}
	return err
}
