// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package wait_test

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cjjingchen/avocado-cloudtest-sub000/pkg/wait"
)

var _ = Describe("Predicates", func() {
	var errNotFound = errors.New("not found")

	Describe("#Truthy", func() {
		It("should be done for a non-zero value", func() {
			value, done, err := Truthy(func() (string, error) { return "ACTIVE", nil })()

			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeTrue())
			Expect(value).To(Equal("ACTIVE"))
		})

		It("should not be done for the zero value", func() {
			_, done, err := Truthy(func() (int, error) { return 0, nil })()

			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeFalse())
		})

		It("should pass errors through", func() {
			_, _, err := Truthy(func() (*int, error) { return nil, errNotFound })()

			Expect(err).To(BeIdenticalTo(errNotFound))
		})
	})

	Describe("#IgnoreErrors", func() {
		failing := func(err error) Predicate[string] {
			return func() (string, bool, error) { return "", false, err }
		}
		isNotFound := func(err error) bool { return errors.Is(err, errNotFound) }

		It("should turn retryable errors into pending results", func() {
			_, done, err := IgnoreErrors(logr.Discard(), failing(errNotFound), isNotFound)()

			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeFalse())
		})

		It("should keep other errors", func() {
			other := errors.New("forbidden")
			_, _, err := IgnoreErrors(logr.Discard(), failing(other), isNotFound)()

			Expect(err).To(BeIdenticalTo(other))
		})

		It("should ignore every error without classifier", func() {
			_, done, err := IgnoreErrors(logr.Discard(), failing(errors.New("any")), nil)()

			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeFalse())
		})

		It("should keep successful results", func() {
			value, done, err := IgnoreErrors(logr.Discard(), func() (string, bool, error) { return "ok", true, nil }, nil)()

			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeTrue())
			Expect(value).To(Equal("ok"))
		})
	})

	Describe("#ResourceFailedError", func() {
		It("should include the reason", func() {
			err := fmt.Errorf("waiting: %w", &ResourceFailedError{Kind: "server", ID: "s1", Status: "ERROR", Reason: "No valid host was found"})

			Expect(IsResourceFailed(err)).To(BeTrue())
			Expect(err).To(MatchError("waiting: server s1 is in status ERROR: No valid host was found"))
		})

		It("should not match other errors", func() {
			Expect(IsResourceFailed(errNotFound)).To(BeFalse())
		})
	})

	Describe("#IgnoreConditionErrors", func() {
		It("should ignore classified errors of a condition", func() {
			done, err := IgnoreConditionErrors(logr.Discard(), func() (bool, error) { return false, errNotFound }, func(err error) bool {
				return errors.Is(err, errNotFound)
			})()

			Expect(err).NotTo(HaveOccurred())
			Expect(done).To(BeFalse())
		})
	})
})
