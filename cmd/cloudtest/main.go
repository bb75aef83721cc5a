// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"github.com/cjjingchen/avocado-cloudtest-sub000/cmd/cloudtest/app"
)

func main() {
	cmd := app.NewCloudtestCommand(signals.SetupSignalHandler())

	if err := cmd.Execute(); err != nil {
		logf.Log.Error(err, "error executing the main command")
		os.Exit(1)
	}
}
